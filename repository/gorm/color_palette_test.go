package gorm

import (
	"testing"

	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

func TestRepositoryImpl_CreateColorPalette(t *testing.T) {
	t.Parallel()
	repo, _, _, user := setupWithUser(t, common)

	t.Run("nil user", func(t *testing.T) {
		t.Parallel()
		_, err := repo.CreateColorPalette(repository.CreateColorPaletteArgs{Name: "a", Colors: []string{"#000000"}})
		assert.ErrorIs(t, err, repository.ErrNilID)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		_, err := repo.CreateColorPalette(repository.CreateColorPaletteArgs{UserID: user.ID, Colors: []string{"#000000"}})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("empty colors", func(t *testing.T) {
		t.Parallel()
		_, err := repo.CreateColorPalette(repository.CreateColorPaletteArgs{UserID: user.ID, Name: "Empty"})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("invalid color", func(t *testing.T) {
		t.Parallel()
		_, err := repo.CreateColorPalette(repository.CreateColorPaletteArgs{UserID: user.ID, Name: "Bad", Colors: []string{"#000000", "nope"}})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)
		u := mustMakeUser(t, repo, rand)

		p, err := repo.CreateColorPalette(repository.CreateColorPaletteArgs{
			UserID:      u.ID,
			Name:        "Ocean",
			Description: null.StringFrom("deep"),
			Colors:      []string{"#006994", "#13293d"},
		})
		require.NoError(err)
		assert.NotZero(p.ID)

		palettes, err := repo.GetColorPalettes(u.ID)
		require.NoError(err)
		if assert.Len(palettes, 1) {
			assert.Equal("Ocean", palettes[0].Name)
			assert.EqualValues(model.HexColors{"#006994", "#13293D"}, palettes[0].Colors)
			assert.False(palettes[0].IsPublic)
			assert.Equal("deep", palettes[0].Description.String)
		}
	})
}

func TestRepositoryImpl_GetPublicColorPalettes(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, ex2)

	private := mustMakeColorPalette(t, repo, user.ID, rand, false)
	p1 := mustMakeColorPalette(t, repo, user.ID, rand, true)
	p2 := mustMakeColorPalette(t, repo, user.ID, rand, true)

	palettes, err := repo.GetPublicColorPalettes(0)
	require.NoError(err)
	ids := make([]int, 0, len(palettes))
	for _, p := range palettes {
		assert.True(p.IsPublic)
		ids = append(ids, p.ID)
	}
	assert.Contains(ids, p1.ID)
	assert.Contains(ids, p2.ID)
	assert.NotContains(ids, private.ID)

	palettes, err = repo.GetPublicColorPalettes(1)
	require.NoError(err)
	assert.Len(palettes, 1)

	palettes, err = repo.GetPublicColorPalettes(-1)
	require.NoError(err)
	assert.GreaterOrEqual(len(palettes), 2)
}

func TestRepositoryImpl_UpdateColorPalette(t *testing.T) {
	t.Parallel()
	repo, _, _, user := setupWithUser(t, common)

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, repo.UpdateColorPalette(0, repository.UpdateColorPaletteArgs{}), repository.ErrNilID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, repo.UpdateColorPalette(1<<30, repository.UpdateColorPaletteArgs{}), repository.ErrNotFound)
	})

	t.Run("empty colors", func(t *testing.T) {
		t.Parallel()
		p := mustMakeColorPalette(t, repo, user.ID, rand, false)
		err := repo.UpdateColorPalette(p.ID, repository.UpdateColorPaletteArgs{Colors: []string{}})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)
		p := mustMakeColorPalette(t, repo, user.ID, rand, false)

		require.NoError(repo.UpdateColorPalette(p.ID, repository.UpdateColorPaletteArgs{
			Name:     null.StringFrom("Forest"),
			Colors:   []string{"#228b22"},
			IsPublic: null.BoolFrom(true),
		}))

		got, err := repo.GetColorPalette(p.ID)
		require.NoError(err)
		assert.Equal("Forest", got.Name)
		assert.EqualValues(model.HexColors{"#228B22"}, got.Colors)
		assert.True(got.IsPublic)
	})
}

func TestRepositoryImpl_DeleteColorPalette(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)

	p := mustMakeColorPalette(t, repo, user.ID, rand, false)
	require.NoError(repo.DeleteColorPalette(p.ID))
	assert.ErrorIs(repo.DeleteColorPalette(p.ID), repository.ErrNotFound)
	assert.ErrorIs(repo.DeleteColorPalette(0), repository.ErrNilID)

	_, err := repo.GetColorPalette(p.ID)
	assert.ErrorIs(err, repository.ErrNotFound)
}
