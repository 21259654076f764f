package user

import (
	"context"
	"time"

	"github.com/guregu/null"
	"github.com/motoki317/sc"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/service/rbac/role"
)

const (
	signInCacheTTL  = time.Minute
	signInCacheSize = 1000
)

type managerImpl struct {
	R           repository.UserRepository
	L           *zap.Logger
	ownerOpenID string
	signIn      *sc.Cache[Identity, *model.User]
}

// NewManager ユーザーマネージャーを生成します
//
// ownerOpenIDに一致する利用者はサインイン時に管理者ロールが付与されます。
func NewManager(repo repository.UserRepository, logger *zap.Logger, ownerOpenID string) Manager {
	m := &managerImpl{
		R:           repo,
		L:           logger.Named("user_manager"),
		ownerOpenID: ownerOpenID,
	}
	m.signIn = sc.NewMust(m.upsert, signInCacheTTL, signInCacheTTL*2, sc.With2QBackend(signInCacheSize))
	return m
}

func (m *managerImpl) upsert(_ context.Context, id Identity) (*model.User, error) {
	args := repository.UpsertUserArgs{
		OpenID:       id.OpenID,
		Name:         null.NewString(id.Name, len(id.Name) > 0),
		Email:        null.NewString(id.Email, len(id.Email) > 0),
		LoginMethod:  null.NewString(id.LoginMethod, len(id.LoginMethod) > 0),
		LastSignedIn: time.Now(),
	}
	if len(m.ownerOpenID) > 0 && id.OpenID == m.ownerOpenID {
		args.Role = role.Admin
	}
	u, err := m.R.UpsertUser(args)
	if err != nil {
		return nil, err
	}
	m.L.Debug("user signed in", zap.Int("userId", u.ID), zap.String("openId", u.OpenID))
	return u, nil
}

func (m *managerImpl) SignIn(ctx context.Context, id Identity) (*model.User, error) {
	if len(id.OpenID) == 0 {
		return nil, repository.ArgError("openId", "OpenID is empty")
	}
	return m.signIn.Get(ctx, id)
}

func (m *managerImpl) Get(_ context.Context, id int) (*model.User, error) {
	return m.R.GetUser(id)
}

func (m *managerImpl) UpdateProfile(_ context.Context, id int, args repository.UpdateUserArgs) (*model.User, error) {
	if err := m.R.UpdateUser(id, args); err != nil {
		return nil, err
	}
	m.signIn.Purge()
	return m.R.GetUser(id)
}
