package counter

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository/mock_repository"
)

func TestNewChatMessageCounter(t *testing.T) {
	t.Parallel()

	t.Run("counts created messages", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockChatMessageRepository(ctrl)
		repo.EXPECT().GetChatMessagesCount().Return(int64(10), nil).Times(1)
		h := hub.New()
		t.Cleanup(h.Close)

		c, err := NewChatMessageCounter(repo, h)
		require.NoError(t, err)
		assert.EqualValues(t, 10, c.Get())

		for i := 0; i < 3; i++ {
			h.Publish(hub.Message{
				Name:   event.ChatMessageCreated,
				Fields: hub.Fields{"message": &model.ChatMessage{ID: i + 11}},
			})
		}
		assert.Eventually(t, func() bool { return c.Get() == 13 }, time.Second, 10*time.Millisecond)
	})

	t.Run("load error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockChatMessageRepository(ctrl)
		mockErr := errors.New("mock error")
		repo.EXPECT().GetChatMessagesCount().Return(int64(0), mockErr).Times(1)
		h := hub.New()
		t.Cleanup(h.Close)

		_, err := NewChatMessageCounter(repo, h)
		assert.ErrorIs(t, err, mockErr)
	})
}
