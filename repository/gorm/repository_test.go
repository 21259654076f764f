package gorm

import (
	"fmt"
	"os"
	"testing"

	"github.com/guregu/null"
	"github.com/leandro-lugaresi/hub"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

const (
	common = "common"
	ex1    = "ex1"
	ex2    = "ex2"
	rand   = "random"
)

var (
	repositories = map[string]*Repository{}
)

func TestMain(m *testing.M) {
	dbs := []string{
		common,
		ex1,
		ex2,
	}
	for _, key := range dbs {
		engine, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:atelier-test-repo-%s?mode=memory&cache=shared", key)), &gorm.Config{
			Logger:         logger.Discard,
			TranslateError: true,
		})
		if err != nil {
			panic(err)
		}
		db, err := engine.DB()
		if err != nil {
			panic(err)
		}
		db.SetMaxOpenConns(1)

		repo, err := NewGormRepository(engine, hub.New(), zap.NewNop())
		if err != nil {
			panic(err)
		}
		if _, err := repo.Sync(); err != nil {
			panic(err)
		}
		repositories[key] = repo.(*Repository)
	}

	// Execute tests
	code := m.Run()

	for _, v := range repositories {
		db, _ := v.db.DB()
		_ = db.Close()
		v.hub.Close()
	}
	os.Exit(code)
}

func setup(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions) {
	t.Helper()
	r, ok := repositories[repo]
	if !ok {
		t.FailNow()
	}
	assert, require := assertAndRequire(t)
	return r, assert, require
}

func setupWithUser(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions, *model.User) {
	t.Helper()
	r, assert, require := setup(t, repo)
	return r, assert, require, mustMakeUser(t, r, rand)
}

func getDB(repo repository.Repository) *gorm.DB {
	return repo.(*Repository).db
}

func assertAndRequire(t *testing.T) (*assert.Assertions, *require.Assertions) {
	return assert.New(t), require.New(t)
}

func mustMakeUser(t *testing.T, repo repository.Repository, openID string) *model.User {
	t.Helper()
	if openID == rand {
		openID = lo.RandomString(32, lo.AlphanumericCharset)
	}
	u, err := repo.UpsertUser(repository.UpsertUserArgs{
		OpenID: openID,
		Name:   null.StringFrom("user-" + openID[:8]),
	})
	require.NoError(t, err)
	return u
}

func mustMakeSavedColor(t *testing.T, repo repository.Repository, userID int, htmlColor string) *model.SavedColor {
	t.Helper()
	c, err := repo.CreateSavedColor(userID, htmlColor, null.String{})
	require.NoError(t, err)
	return c
}

func mustMakeColorPalette(t *testing.T, repo repository.Repository, userID int, name string, isPublic bool) *model.ColorPalette {
	t.Helper()
	if name == rand {
		name = lo.RandomString(20, lo.AlphanumericCharset)
	}
	p, err := repo.CreateColorPalette(repository.CreateColorPaletteArgs{
		UserID:   userID,
		Name:     name,
		Colors:   []string{"#000000", "#FFFFFF"},
		IsPublic: isPublic,
	})
	require.NoError(t, err)
	return p
}

func mustMakeArtistTag(t *testing.T, repo repository.Repository, name string) *model.ArtistTag {
	t.Helper()
	if name == rand {
		name = lo.RandomString(20, lo.AlphanumericCharset)
	}
	tag, err := repo.CreateArtistTag(repository.CreateArtistTagArgs{Name: name})
	require.NoError(t, err)
	return tag
}

func mustAddUserTag(t *testing.T, repo repository.Repository, userID, tagID int) {
	t.Helper()
	_, err := repo.AddUserTag(userID, tagID)
	require.NoError(t, err)
}

func mustMakeChatMessage(t *testing.T, repo repository.Repository, userID int, message string) *model.ChatMessage {
	t.Helper()
	m, err := repo.CreateChatMessage(repository.CreateChatMessageArgs{
		UserID:   userID,
		UserName: "tester",
		Message:  message,
	})
	require.NoError(t, err)
	return m
}

func count(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Count(&n).Error)
	return n
}
