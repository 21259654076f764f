package migration

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v1 userTagsの(userId, tag)ユニークインデックスとchatMessagesの(createdAt, id)複合インデックスの追加
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			// 重複付与を削除
			if err := db.Exec("DELETE FROM userTags WHERE id NOT IN (SELECT id FROM (SELECT MIN(id) AS id FROM userTags GROUP BY userId, tag) AS t)").Error; err != nil {
				return err
			}
			if err := db.Migrator().CreateIndex(&v1UserTag{}, "idx_user_tags_user_id_tag"); err != nil {
				return err
			}
			return db.Migrator().CreateIndex(&v1ChatMessage{}, "idx_chat_messages_created_at_id")
		},
		Rollback: func(db *gorm.DB) error {
			if err := db.Migrator().DropIndex(&v1UserTag{}, "idx_user_tags_user_id_tag"); err != nil {
				return err
			}
			return db.Migrator().DropIndex(&v1ChatMessage{}, "idx_chat_messages_created_at_id")
		},
	}
}

type v1UserTag struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int       `gorm:"column:userId;not null;uniqueIndex:idx_user_tags_user_id_tag,priority:1"`
	Tag       string    `gorm:"column:tag;type:varchar(64);not null;uniqueIndex:idx_user_tags_user_id_tag,priority:2"`
	CreatedAt time.Time `gorm:"column:createdAt;precision:6"`
}

func (*v1UserTag) TableName() string {
	return "userTags"
}

type v1ChatMessage struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement;index:idx_chat_messages_created_at_id,priority:2"`
	CreatedAt time.Time `gorm:"column:createdAt;precision:6;index:idx_chat_messages_created_at_id,priority:1"`
}

func (*v1ChatMessage) TableName() string {
	return "chatMessages"
}
