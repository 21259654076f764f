package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()
	c, err := NewCatalog()
	require.NoError(t, err)

	cats := c.Categories()
	ids := make([]string, 0, len(cats))
	for _, cat := range cats {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []string{"marble", "wood", "skin", "gradient", "shading", "leaves"}, ids)

	assert.Len(t, c.List(""), 15)
	assert.Len(t, c.List("all"), 15)
	assert.Len(t, c.List("marble"), 5)
	assert.Len(t, c.List("wood"), 4)
	assert.Len(t, c.List("nothing"), 0)

	tex, err := c.Get("marble-white")
	if assert.NoError(t, err) {
		assert.Equal(t, "White Marble", tex.Name.In(English))
		assert.Equal(t, "Mármore Branco", tex.Name.In(Portuguese))
		assert.NotEmpty(t, tex.Tutorial.In(English))
		assert.Equal(t, "/textures/marble-white.jpg", tex.Image)
	}

	_, err = c.Get("plastic")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, c.Exists("leaves-green"))
	assert.False(t, c.Exists("plastic"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		_, err := parse([]byte("categories: []\ntextures:\n  - id: a\n    category: b\n"))
		assert.Error(t, err)
	})

	t.Run("duplicated id", func(t *testing.T) {
		t.Parallel()
		_, err := parse([]byte("categories:\n  - id: b\ntextures:\n  - id: a\n    category: b\n  - id: a\n    category: b\n"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := parse([]byte("categories: ["))
		assert.Error(t, err)
	})
}

func TestParseLang(t *testing.T) {
	t.Parallel()
	assert.Equal(t, English, ParseLang("en"))
	assert.Equal(t, Portuguese, ParseLang("pt"))
	assert.Equal(t, Portuguese, ParseLang(""))
	assert.Equal(t, Portuguese, ParseLang("fr"))
}
