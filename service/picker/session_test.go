package picker

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/atelier/model"
)

func redImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func recordingSave(saved *[]string) SaveFunc {
	return func(_ context.Context, c Color) (*model.SavedColor, error) {
		*saved = append(*saved, c.Hex())
		return &model.SavedColor{ID: len(*saved), HTMLColor: c.Hex()}, nil
	}
}

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("hover and commit", func(t *testing.T) {
		t.Parallel()
		assert, require := assert.New(t), require.New(t)
		var saved []string
		s := NewSession(redImage(), image.Pt(100, 100), recordingSave(&saved))
		assert.Equal(Idle, s.State())

		c, ok := s.Move(Point{50, 50})
		require.True(ok)
		assert.Equal("#FF0000", c.Hex())
		assert.Equal(Hovering, s.State())

		sc, err := s.Commit(context.Background())
		require.NoError(err)
		require.NotNil(sc)
		assert.Equal("#FF0000", sc.HTMLColor)
		assert.Equal(Saved, s.State())
		assert.Equal([]string{"#FF0000"}, saved)

		// Saved状態でのCommitは何もしない
		sc, err = s.Commit(context.Background())
		assert.NoError(err)
		assert.Nil(sc)
		assert.Len(saved, 1)
	})

	t.Run("commit while idle is a no-op", func(t *testing.T) {
		t.Parallel()
		var saved []string
		s := NewSession(redImage(), image.Pt(100, 100), recordingSave(&saved))

		sc, err := s.Commit(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, sc)

		s.Move(Point{50, 50})
		_, ok := s.Move(Point{150, 50})
		assert.False(t, ok)
		assert.Equal(t, Idle, s.State())

		sc, err = s.Commit(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, sc)
		assert.Len(t, saved, 0)
	})

	t.Run("leave", func(t *testing.T) {
		t.Parallel()
		s := NewSession(redImage(), image.Pt(10, 10), nil)
		s.Move(Point{1, 1})
		s.Leave()
		assert.Equal(t, Idle, s.State())
		_, ok := s.Hovered()
		assert.False(t, ok)
	})

	t.Run("not loaded", func(t *testing.T) {
		t.Parallel()
		s := NewSession(nil, image.Pt(10, 10), nil)
		_, ok := s.Move(Point{1, 1})
		assert.False(t, ok)
		assert.Equal(t, Idle, s.State())

		s.Load(redImage(), image.Pt(10, 10))
		_, ok = s.Move(Point{1, 1})
		assert.True(t, ok)
		assert.Equal(t, Hovering, s.State())
	})

	t.Run("save failure keeps hovering", func(t *testing.T) {
		t.Parallel()
		fail := errors.New("unavailable")
		s := NewSession(redImage(), image.Pt(10, 10), func(context.Context, Color) (*model.SavedColor, error) {
			return nil, fail
		})
		s.Move(Point{1, 1})
		_, err := s.Commit(context.Background())
		assert.ErrorIs(t, err, fail)
		assert.Equal(t, Hovering, s.State())
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "hovering", Hovering.String())
	assert.Equal(t, "saved", Saved.String())
	assert.Equal(t, "unknown", State(42).String())
}
