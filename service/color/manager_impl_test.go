package color

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/repository/mock_repository"
)

func TestManagerImpl_List(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		repo.EXPECT().GetSavedColors(1).Return([]*model.SavedColor{{ID: 1, UserID: 1, HTMLColor: "#FF5733"}}, nil).Times(1)

		colors, err := NewManager(repo, zap.NewNop()).List(1)
		if assert.NoError(t, err) {
			assert.Len(t, colors, 1)
		}
	})

	t.Run("unavailable degrades to empty", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		repo.EXPECT().GetSavedColors(1).Return(nil, fmt.Errorf("%w: connection refused", repository.ErrUnavailable)).Times(1)

		colors, err := NewManager(repo, zap.NewNop()).List(1)
		if assert.NoError(t, err) {
			assert.NotNil(t, colors)
			assert.Len(t, colors, 0)
		}
	})

	t.Run("other error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		mockErr := errors.New("mock error")
		repo.EXPECT().GetSavedColors(1).Return(nil, mockErr).Times(1)

		_, err := NewManager(repo, zap.NewNop()).List(1)
		assert.ErrorIs(t, err, mockErr)
	})
}

func TestManagerImpl_Save(t *testing.T) {
	t.Parallel()

	t.Run("unavailable fails loudly", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		repo.EXPECT().CreateSavedColor(1, "#FF5733", null.StringFrom("Sunset")).Return(nil, repository.ErrUnavailable).Times(1)

		_, err := NewManager(repo, zap.NewNop()).Save(1, "#FF5733", null.StringFrom("Sunset"))
		assert.ErrorIs(t, err, repository.ErrUnavailable)
	})
}

func TestManagerImpl_Delete(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		repo.EXPECT().GetSavedColor(5).Return(nil, repository.ErrNotFound).Times(1)

		assert.ErrorIs(t, NewManager(repo, zap.NewNop()).Delete(1, 5), repository.ErrNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		repo.EXPECT().GetSavedColor(5).Return(&model.SavedColor{ID: 5, UserID: 2}, nil).Times(1)
		repo.EXPECT().DeleteSavedColor(gomock.Any()).Times(0)

		assert.ErrorIs(t, NewManager(repo, zap.NewNop()).Delete(1, 5), repository.ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedColorRepository(ctrl)
		repo.EXPECT().GetSavedColor(5).Return(&model.SavedColor{ID: 5, UserID: 1}, nil).Times(1)
		repo.EXPECT().DeleteSavedColor(5).Return(nil).Times(1)

		assert.NoError(t, NewManager(repo, zap.NewNop()).Delete(1, 5))
	})
}
