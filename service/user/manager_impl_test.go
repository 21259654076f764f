package user

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/repository/mock_repository"
	"github.com/traPtitech/atelier/service/rbac/role"
)

func TestManagerImpl_SignIn(t *testing.T) {
	t.Parallel()

	t.Run("empty open id", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockUserRepository(ctrl)

		_, err := NewManager(repo, zap.NewNop(), "").SignIn(context.Background(), Identity{})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("cached", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockUserRepository(ctrl)
		repo.EXPECT().
			UpsertUser(gomock.Any()).
			DoAndReturn(func(args repository.UpsertUserArgs) (*model.User, error) {
				assert.Equal(t, "oid-1", args.OpenID)
				assert.Equal(t, null.StringFrom("alice"), args.Name)
				assert.False(t, args.Email.Valid)
				assert.Empty(t, args.Role)
				return &model.User{ID: 1, OpenID: args.OpenID, Name: args.Name, Role: role.User}, nil
			}).
			Times(1)

		m := NewManager(repo, zap.NewNop(), "owner")
		id := Identity{OpenID: "oid-1", Name: "alice"}
		for i := 0; i < 3; i++ {
			u, err := m.SignIn(context.Background(), id)
			if assert.NoError(t, err) {
				assert.Equal(t, 1, u.ID)
			}
		}
	})

	t.Run("owner becomes admin", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockUserRepository(ctrl)
		repo.EXPECT().
			UpsertUser(gomock.Any()).
			DoAndReturn(func(args repository.UpsertUserArgs) (*model.User, error) {
				assert.Equal(t, role.Admin, args.Role)
				return &model.User{ID: 2, OpenID: args.OpenID, Role: args.Role}, nil
			}).
			Times(1)

		u, err := NewManager(repo, zap.NewNop(), "owner").SignIn(context.Background(), Identity{OpenID: "owner"})
		if assert.NoError(t, err) {
			assert.Equal(t, role.Admin, u.Role)
		}
	})

	t.Run("error is not cached", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockUserRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().UpsertUser(gomock.Any()).Return(nil, repository.ErrUnavailable),
			repo.EXPECT().UpsertUser(gomock.Any()).Return(&model.User{ID: 3, OpenID: "oid-3"}, nil),
		)

		m := NewManager(repo, zap.NewNop(), "")
		_, err := m.SignIn(context.Background(), Identity{OpenID: "oid-3"})
		assert.ErrorIs(t, err, repository.ErrUnavailable)
		u, err := m.SignIn(context.Background(), Identity{OpenID: "oid-3"})
		if assert.NoError(t, err) {
			assert.Equal(t, 3, u.ID)
		}
	})
}

func TestManagerImpl_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockUserRepository(ctrl)
		args := repository.UpdateUserArgs{Name: null.StringFrom("bob")}
		repo.EXPECT().UpsertUser(gomock.Any()).Return(&model.User{ID: 1, OpenID: "oid"}, nil).Times(2)
		repo.EXPECT().UpdateUser(1, args).Return(nil).Times(1)
		repo.EXPECT().GetUser(1).Return(&model.User{ID: 1, OpenID: "oid", Name: null.StringFrom("bob")}, nil).Times(1)

		m := NewManager(repo, zap.NewNop(), "")
		_, err := m.SignIn(context.Background(), Identity{OpenID: "oid"})
		assert.NoError(t, err)

		u, err := m.UpdateProfile(context.Background(), 1, args)
		if assert.NoError(t, err) {
			assert.Equal(t, "bob", u.Name.String)
		}

		// プロフィール更新後は再度読み込まれる
		_, err = m.SignIn(context.Background(), Identity{OpenID: "oid"})
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockUserRepository(ctrl)
		repo.EXPECT().UpdateUser(9, gomock.Any()).Return(repository.ErrNotFound).Times(1)

		_, err := NewManager(repo, zap.NewNop(), "").UpdateProfile(context.Background(), 9, repository.UpdateUserArgs{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestManagerImpl_Get(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUser(5).Return(&model.User{ID: 5}, nil).Times(1)

	u, err := NewManager(repo, zap.NewNop(), "").Get(context.Background(), 5)
	if assert.NoError(t, err) {
		assert.Equal(t, 5, u.ID)
	}
}
