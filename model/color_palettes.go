package model

import (
	"time"

	"github.com/guregu/null"
)

// ColorPalette カラーパレット
type ColorPalette struct {
	ID          int         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      int         `gorm:"column:userId;not null;index"`
	Name        string      `gorm:"column:name;type:varchar(128);not null"`
	Description null.String `gorm:"column:description;type:text"`
	Colors      HexColors   `gorm:"column:colors;type:text;not null"`
	IsPublic    bool        `gorm:"column:isPublic;not null;default:false"`
	CreatedAt   time.Time   `gorm:"column:createdAt;precision:6"`
	UpdatedAt   time.Time   `gorm:"column:updatedAt;precision:6"`
}

// TableName ColorPalette構造体のテーブル名
func (*ColorPalette) TableName() string {
	return "colorPalettes"
}

// IsVisibleTo 指定したユーザーがこのパレットを閲覧できるかどうか
func (p *ColorPalette) IsVisibleTo(userID int) bool {
	return p.IsPublic || p.UserID == userID
}
