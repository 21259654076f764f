package model

import (
	"testing"

	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"
)

func TestUser_TableName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "users", (&User{}).TableName())
}

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()

	t.Run("named", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Alice", (&User{Name: null.StringFrom("Alice")}).DisplayName())
	})

	t.Run("null name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Anonymous", (&User{}).DisplayName())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Anonymous", (&User{Name: null.StringFrom("")}).DisplayName())
	})
}
