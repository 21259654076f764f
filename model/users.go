package model

import (
	"time"

	"github.com/guregu/null"
)

// User ユーザー構造体
//
// OpenIDは外部IDプロバイダが発行する識別子で、作成後に変更されることはありません。
type User struct {
	ID           int         `gorm:"column:id;primaryKey;autoIncrement"`
	OpenID       string      `gorm:"column:openId;type:varchar(64);not null;uniqueIndex"`
	Name         null.String `gorm:"column:name;type:text"`
	Email        null.String `gorm:"column:email;type:varchar(320)"`
	LoginMethod  null.String `gorm:"column:loginMethod;type:varchar(64)"`
	Role         string      `gorm:"column:role;type:varchar(16);not null;default:user"`
	Avatar       null.String `gorm:"column:avatar;type:text"`
	Bio          null.String `gorm:"column:bio;type:text"`
	CreatedAt    time.Time   `gorm:"column:createdAt;precision:6"`
	UpdatedAt    time.Time   `gorm:"column:updatedAt;precision:6"`
	LastSignedIn time.Time   `gorm:"column:lastSignedIn;precision:6"`
}

// TableName User構造体のテーブル名
func (*User) TableName() string {
	return "users"
}

// DisplayName チャットなどで表示する名前を返します
func (u *User) DisplayName() string {
	if u.Name.Valid && len(u.Name.String) > 0 {
		return u.Name.String
	}
	return "Anonymous"
}
