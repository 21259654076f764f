package chat

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/service/texture"
)

type managerImpl struct {
	R                repository.ChatMessageRepository
	T                texture.Catalog
	L                *zap.Logger
	MaxContentLength int
}

// NewManager コミュニティチャットマネージャーを生成します
//
// maxContentLengthが0以下の場合はDefaultMaxContentLengthを使います。
func NewManager(repo repository.ChatMessageRepository, catalog texture.Catalog, logger *zap.Logger, maxContentLength int) Manager {
	if maxContentLength <= 0 {
		maxContentLength = DefaultMaxContentLength
	}
	return &managerImpl{
		R:                repo,
		T:                catalog,
		L:                logger.Named("chat_manager"),
		MaxContentLength: maxContentLength,
	}
}

func (m *managerImpl) List() ([]*model.ChatMessage, error) {
	messages, err := m.R.GetRecentChatMessages(WindowSize)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			m.L.Warn("failed to list chat messages, returning empty list", zap.Error(err))
			return []*model.ChatMessage{}, nil
		}
		return nil, err
	}
	return messages, nil
}

func (m *managerImpl) Send(author *model.User, args SendArgs) (*model.ChatMessage, error) {
	if author == nil {
		return nil, repository.ErrNilID
	}
	if len(strings.TrimSpace(args.Content)) == 0 && !args.SharedColor.Valid {
		return nil, repository.ArgError("content", "content or sharedColor is required")
	}
	if utf8.RuneCountInString(args.Content) > m.MaxContentLength {
		return nil, repository.ArgError("content", fmt.Sprintf("content must be at most %d characters", m.MaxContentLength))
	}
	if args.SharedTexture.Valid && !m.T.Exists(args.SharedTexture.String) {
		return nil, repository.ArgError("sharedTexture", "unknown texture")
	}

	return m.R.CreateChatMessage(repository.CreateChatMessageArgs{
		UserID:        author.ID,
		UserName:      author.DisplayName(),
		Message:       args.Content,
		ColorShared:   args.SharedColor,
		TextureShared: args.SharedTexture,
	})
}
