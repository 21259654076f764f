package gormutil

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	errMySQLDuplicatedRecord uint16 = 1062
)

// IsDuplicatedRecordErr 重複レコードエラーかどうか
func IsDuplicatedRecordErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mErr *mysql.MySQLError
	if errors.As(err, &mErr) {
		return mErr.Number == errMySQLDuplicatedRecord
	}
	return false
}

// IsConnectionError DBへの接続が失われたことを示すエラーかどうか
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
