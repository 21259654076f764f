package model

import (
	"time"

	"github.com/guregu/null"
)

// ChatMessage コミュニティチャットのメッセージ
//
// UserNameは投稿時点のユーザー名のスナップショットです。
type ChatMessage struct {
	ID            int         `gorm:"column:id;primaryKey;autoIncrement;index:idx_chat_messages_created_at_id,priority:2"`
	UserID        int         `gorm:"column:userId;not null;index"`
	UserName      string      `gorm:"column:userName;type:varchar(128);not null"`
	Message       string      `gorm:"column:message;type:text;not null"`
	ColorShared   null.String `gorm:"column:colorShared;type:varchar(7)"`
	TextureShared null.String `gorm:"column:textureShared;type:varchar(128)"`
	CreatedAt     time.Time   `gorm:"column:createdAt;precision:6;index:idx_chat_messages_created_at_id,priority:1"`
}

// TableName ChatMessage構造体のテーブル名
func (*ChatMessage) TableName() string {
	return "chatMessages"
}
