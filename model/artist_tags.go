package model

import (
	"strconv"
	"time"

	"github.com/guregu/null"
)

// ArtistTag 管理者が作成するアーティストタグ
type ArtistTag struct {
	ID          int         `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string      `gorm:"column:name;type:varchar(64);not null;uniqueIndex"`
	Description null.String `gorm:"column:description;type:text"`
	Icon        null.String `gorm:"column:icon;type:varchar(64)"`
	Color       null.String `gorm:"column:color;type:varchar(7)"`
	CreatedAt   time.Time   `gorm:"column:createdAt;precision:6"`
}

// TableName ArtistTag構造体のテーブル名
func (*ArtistTag) TableName() string {
	return "artistTags"
}

// Ref userTags.tagに保存される参照文字列を返します
func (t *ArtistTag) Ref() string {
	return TagRef(t.ID)
}

// TagRef タグIDをuserTags.tagに保存される参照文字列に変換します
func TagRef(tagID int) string {
	return strconv.Itoa(tagID)
}
