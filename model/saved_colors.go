package model

import (
	"time"

	"github.com/guregu/null"
)

// SavedColor ユーザーが保存した色
type SavedColor struct {
	ID        int         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int         `gorm:"column:userId;not null;index"`
	HTMLColor string      `gorm:"column:htmlColor;type:varchar(7);not null"`
	Name      null.String `gorm:"column:name;type:varchar(128)"`
	CreatedAt time.Time   `gorm:"column:createdAt;precision:6"`
}

// TableName SavedColor構造体のテーブル名
func (*SavedColor) TableName() string {
	return "savedColors"
}
