package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/traPtitech/atelier/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // userTagsの(userId, tag)ユニークインデックスとchatMessagesの(createdAt, id)複合インデックスの追加
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のマイグレーション後のスキーマ定義と一致すること
func AllTables() []interface{} {
	return []interface{}{
		&model.User{},
		&model.SavedColor{},
		&model.ColorPalette{},
		&model.ArtistTag{},
		&model.UserTag{},
		&model.ChatMessage{},
	}
}
