package gorm

import (
	"slices"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/leandro-lugaresi/hub"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/utils/validator"
)

// CreateChatMessage implements ChatMessageRepository interface.
func (repo *Repository) CreateChatMessage(args repository.CreateChatMessageArgs) (*model.ChatMessage, error) {
	if args.UserID == 0 {
		return nil, repository.ErrNilID
	}
	if len(args.UserName) == 0 {
		return nil, repository.ArgError("args.UserName", "UserName is required")
	}
	if len(args.Message) == 0 && !args.ColorShared.Valid {
		return nil, repository.ArgError("args.Message", "Message or ColorShared is required")
	}
	if args.ColorShared.Valid {
		if err := vd.Validate(args.ColorShared.String, validator.HexColorRuleRequired...); err != nil {
			return nil, repository.ArgError("args.ColorShared", "ColorShared must be #RRGGBB")
		}
		args.ColorShared.String = validator.NormalizeHexColor(args.ColorShared.String)
	}
	if args.TextureShared.Valid {
		if err := vd.Validate(args.TextureShared.String, validator.TextureIDRule...); err != nil {
			return nil, repository.ArgError("args.TextureShared", "TextureShared is invalid")
		}
	}

	m := &model.ChatMessage{
		UserID:        args.UserID,
		UserName:      args.UserName,
		Message:       args.Message,
		ColorShared:   args.ColorShared,
		TextureShared: args.TextureShared,
	}
	if err := repo.db.Create(m).Error; err != nil {
		return nil, convertError(err)
	}

	repo.hub.Publish(hub.Message{
		Name: event.ChatMessageCreated,
		Fields: hub.Fields{
			"message": m,
		},
	})
	return m, nil
}

// GetRecentChatMessages implements ChatMessageRepository interface.
func (repo *Repository) GetRecentChatMessages(limit int) ([]*model.ChatMessage, error) {
	messages := make([]*model.ChatMessage, 0)
	if limit <= 0 {
		return messages, nil
	}
	err := repo.db.
		Order("createdAt DESC, id DESC").
		Limit(limit).
		Find(&messages).
		Error
	if err != nil {
		return nil, convertError(err)
	}
	slices.Reverse(messages)
	return messages, nil
}

// GetChatMessagesCount implements ChatMessageRepository interface.
func (repo *Repository) GetChatMessagesCount() (int64, error) {
	var n int64
	if err := repo.db.Model(&model.ChatMessage{}).Count(&n).Error; err != nil {
		return 0, convertError(err)
	}
	return n, nil
}
