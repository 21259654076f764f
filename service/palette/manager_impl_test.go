package palette

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/repository/mock_repository"
)

func setup(t *testing.T) (*mock_repository.MockColorPaletteRepository, Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockColorPaletteRepository(ctrl)
	return repo, NewManager(repo, zap.NewNop())
}

func TestManagerImpl_List(t *testing.T) {
	t.Parallel()

	t.Run("unavailable degrades to empty", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalettes(1).Return(nil, repository.ErrUnavailable).Times(1)
		repo.EXPECT().GetPublicColorPalettes(10).Return(nil, repository.ErrUnavailable).Times(1)

		palettes, err := m.List(1)
		if assert.NoError(t, err) {
			assert.Len(t, palettes, 0)
		}
		palettes, err = m.ListPublic(10)
		if assert.NoError(t, err) {
			assert.Len(t, palettes, 0)
		}
	})
}

func TestManagerImpl_Get(t *testing.T) {
	t.Parallel()

	t.Run("private of others", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 2}, nil).Times(1)

		_, err := m.Get(1, 3)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("public of others", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 2, IsPublic: true}, nil).Times(1)

		p, err := m.Get(1, 3)
		if assert.NoError(t, err) {
			assert.Equal(t, 3, p.ID)
		}
	})
}

func TestManagerImpl_Update(t *testing.T) {
	t.Parallel()

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 2, IsPublic: true}, nil).Times(1)
		repo.EXPECT().UpdateColorPalette(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.Update(1, 3, repository.UpdateColorPaletteArgs{Name: null.StringFrom("x")})
		assert.ErrorIs(t, err, repository.ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		args := repository.UpdateColorPaletteArgs{Name: null.StringFrom("Renamed")}
		gomock.InOrder(
			repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 1, Name: "Old"}, nil),
			repo.EXPECT().UpdateColorPalette(3, args).Return(nil),
			repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 1, Name: "Renamed"}, nil),
		)

		p, err := m.Update(1, 3, args)
		if assert.NoError(t, err) {
			assert.Equal(t, "Renamed", p.Name)
		}
	})
}

func TestManagerImpl_Delete(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalette(3).Return(nil, repository.ErrNotFound).Times(1)

		assert.ErrorIs(t, m.Delete(1, 3), repository.ErrNotFound)
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 2}, nil).Times(1)

		assert.ErrorIs(t, m.Delete(1, 3), repository.ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo, m := setup(t)
		repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{ID: 3, UserID: 1}, nil).Times(1)
		repo.EXPECT().DeleteColorPalette(3).Return(nil).Times(1)

		assert.NoError(t, m.Delete(1, 3))
	})
}

func TestManagerImpl_Export(t *testing.T) {
	t.Parallel()
	repo, m := setup(t)
	repo.EXPECT().GetColorPalette(3).Return(&model.ColorPalette{
		ID:          3,
		UserID:      1,
		Name:        "Ocean",
		Colors:      model.HexColors{"#006994", "#13293D"},
		Description: null.StringFrom("deep sea"),
	}, nil).Times(1)

	doc, err := m.Export(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ocean", doc.Name)
	assert.Equal(t, []string{"#006994", "#13293D"}, doc.Colors)
	assert.Equal(t, "deep sea", doc.Description.String)
}
