package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "savedColors", (&SavedColor{}).TableName())
	assert.Equal(t, "colorPalettes", (&ColorPalette{}).TableName())
	assert.Equal(t, "artistTags", (&ArtistTag{}).TableName())
	assert.Equal(t, "userTags", (&UserTag{}).TableName())
	assert.Equal(t, "chatMessages", (&ChatMessage{}).TableName())
}

func TestUserTag_TagID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 12, (&UserTag{Tag: "12"}).TagID())
	assert.Equal(t, 0, (&UserTag{Tag: "abc"}).TagID())
	assert.Equal(t, "7", (&ArtistTag{ID: 7}).Ref())
}

func TestColorPalette_IsVisibleTo(t *testing.T) {
	t.Parallel()
	private := &ColorPalette{UserID: 1}
	public := &ColorPalette{UserID: 1, IsPublic: true}
	assert.True(t, private.IsVisibleTo(1))
	assert.False(t, private.IsVisibleTo(2))
	assert.True(t, public.IsVisibleTo(2))
}
