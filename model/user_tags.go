package model

import (
	"strconv"
	"time"
)

// UserTag ユーザーへのアーティストタグの付与
//
// Tagにはタグの数値IDが文字列として入ります。
type UserTag struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int       `gorm:"column:userId;not null;uniqueIndex:idx_user_tags_user_id_tag,priority:1"`
	Tag       string    `gorm:"column:tag;type:varchar(64);not null;index;uniqueIndex:idx_user_tags_user_id_tag,priority:2"`
	CreatedAt time.Time `gorm:"column:createdAt;precision:6"`

	ArtistTag *ArtistTag `gorm:"-"`
}

// TableName UserTag構造体のテーブル名
func (*UserTag) TableName() string {
	return "userTags"
}

// TagID 参照先タグのIDを返します。数値として解釈できない場合は0です
func (ut *UserTag) TagID() int {
	id, err := strconv.Atoi(ut.Tag)
	if err != nil {
		return 0
	}
	return id
}
