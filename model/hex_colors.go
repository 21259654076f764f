package model

import (
	"database/sql/driver"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// HexColors #RRGGBB形式の色の配列
//
// DBにはJSON配列の文字列として保存されます。
type HexColors []string

// Value database/sql/driver.Valuer 実装
func (arr HexColors) Value() (driver.Value, error) {
	if arr == nil {
		return "[]", nil
	}
	return jsoniter.ConfigFastest.MarshalToString([]string(arr))
}

// Scan database/sql.Scanner 実装
func (arr *HexColors) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*arr = HexColors{}
		return nil
	case string:
		return jsoniter.ConfigFastest.UnmarshalFromString(s, (*[]string)(arr))
	case []byte:
		return jsoniter.ConfigFastest.Unmarshal(s, (*[]string)(arr))
	default:
		return errors.New("failed to scan HexColors")
	}
}
