package gormutil

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsConnectionError(t *testing.T) {
	t.Parallel()

	assert.False(t, IsConnectionError(nil))
	assert.False(t, IsConnectionError(errors.New("syntax error")))
	assert.False(t, IsConnectionError(gorm.ErrRecordNotFound))
	assert.True(t, IsConnectionError(driver.ErrBadConn))
	assert.True(t, IsConnectionError(sql.ErrConnDone))
	assert.True(t, IsConnectionError(mysql.ErrInvalidConn))
	assert.True(t, IsConnectionError(fmt.Errorf("query: %w", &net.OpError{Op: "dial", Err: errors.New("refused")})))
}

func TestIsDuplicatedRecordErr(t *testing.T) {
	t.Parallel()

	assert.False(t, IsDuplicatedRecordErr(nil))
	assert.False(t, IsDuplicatedRecordErr(errors.New("x")))
	assert.True(t, IsDuplicatedRecordErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicatedRecordErr(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsDuplicatedRecordErr(&mysql.MySQLError{Number: 1452}))
}
