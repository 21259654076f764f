package tag

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/repository/mock_repository"
)

func setup(t *testing.T) (*mock_repository.MockArtistTagRepository, *mock_repository.MockUserRepository, Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockArtistTagRepository(ctrl)
	ur := mock_repository.NewMockUserRepository(ctrl)
	return repo, ur, NewManager(repo, ur, zap.NewNop())
}

func TestManagerImpl_List(t *testing.T) {
	t.Parallel()

	t.Run("unavailable degrades to empty", func(t *testing.T) {
		t.Parallel()
		repo, _, m := setup(t)
		repo.EXPECT().GetArtistTags().Return(nil, repository.ErrUnavailable).Times(1)
		repo.EXPECT().GetUserTags(1).Return(nil, repository.ErrUnavailable).Times(1)

		tags, err := m.List()
		if assert.NoError(t, err) {
			assert.Len(t, tags, 0)
		}
		uts, err := m.GetUserTags(1)
		if assert.NoError(t, err) {
			assert.Len(t, uts, 0)
		}
	})
}

func TestManagerImpl_Create(t *testing.T) {
	t.Parallel()

	t.Run("conflict", func(t *testing.T) {
		t.Parallel()
		repo, _, m := setup(t)
		args := repository.CreateArtistTagArgs{Name: "Ink"}
		repo.EXPECT().CreateArtistTag(args).Return(nil, repository.ErrAlreadyExists).Times(1)

		_, err := m.Create(args)
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	})
}

func TestManagerImpl_Assign(t *testing.T) {
	t.Parallel()

	t.Run("user not found", func(t *testing.T) {
		t.Parallel()
		repo, ur, m := setup(t)
		ur.EXPECT().GetUser(9).Return(nil, repository.ErrNotFound).Times(1)
		repo.EXPECT().AddUserTag(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.Assign(9, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, ur, m := setup(t)
		ur.EXPECT().GetUser(2).Return(&model.User{ID: 2}, nil).Times(1)
		repo.EXPECT().AddUserTag(2, 1).Return(&model.UserTag{ID: 1, UserID: 2, Tag: "1"}, nil).Times(1)

		ut, err := m.Assign(2, 1)
		if assert.NoError(t, err) {
			assert.Equal(t, 1, ut.TagID())
		}
	})
}

func TestManagerImpl_GetUsersByTag(t *testing.T) {
	t.Parallel()

	t.Run("tag not found", func(t *testing.T) {
		t.Parallel()
		repo, _, m := setup(t)
		repo.EXPECT().GetArtistTag(5).Return(nil, repository.ErrNotFound).Times(1)

		_, err := m.GetUsersByTag(5)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, ur, m := setup(t)
		repo.EXPECT().GetArtistTag(5).Return(&model.ArtistTag{ID: 5}, nil).Times(1)
		repo.EXPECT().GetUserIDsByArtistTag(5).Return([]int{1, 2}, nil).Times(1)
		ur.EXPECT().GetUsers([]int{1, 2}).Return([]*model.User{{ID: 1}, {ID: 2}}, nil).Times(1)

		users, err := m.GetUsersByTag(5)
		if assert.NoError(t, err) {
			assert.Len(t, users, 2)
		}
	})
}
