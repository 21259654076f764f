package counter

import (
	"testing"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/service/rbac/role"
)

func TestNewUserCounter(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open("file:atelier-test-counter-user?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.User{}))
	require.NoError(t, db.Create([]*model.User{
		{OpenID: "counter-a", Role: role.User},
		{OpenID: "counter-b", Role: role.User},
		{OpenID: "counter-c", Role: role.Admin},
	}).Error)

	h := hub.New()
	t.Cleanup(h.Close)
	c, err := NewUserCounter(db, h)
	require.NoError(t, err)
	assert.EqualValues(t, 3, c.Get())
	assert.EqualValues(t, 2, c.GetByRole(role.User))
	assert.EqualValues(t, 1, c.GetByRole(role.Admin))

	h.Publish(hub.Message{
		Name:   event.UserCreated,
		Fields: hub.Fields{"user": &model.User{ID: 4, OpenID: "counter-d", Role: role.User}},
	})
	assert.Eventually(t, func() bool { return c.Get() == 4 }, time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 3, c.GetByRole(role.User))
}
