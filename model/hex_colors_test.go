package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexColors_Value(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		v, err := HexColors(nil).Value()
		if assert.NoError(t, err) {
			assert.Equal(t, "[]", v)
		}
	})

	t.Run("colors", func(t *testing.T) {
		t.Parallel()
		v, err := HexColors{"#FF0000", "#00FF00"}.Value()
		if assert.NoError(t, err) {
			assert.Equal(t, `["#FF0000","#00FF00"]`, v)
		}
	})
}

func TestHexColors_Scan(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		var arr HexColors
		if assert.NoError(t, arr.Scan(nil)) {
			assert.Len(t, arr, 0)
			assert.NotNil(t, arr)
		}
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		var arr HexColors
		if assert.NoError(t, arr.Scan(`["#123456"]`)) {
			assert.EqualValues(t, HexColors{"#123456"}, arr)
		}
	})

	t.Run("bytes", func(t *testing.T) {
		t.Parallel()
		var arr HexColors
		if assert.NoError(t, arr.Scan([]byte(`["#ABCDEF","#000000"]`))) {
			assert.EqualValues(t, HexColors{"#ABCDEF", "#000000"}, arr)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Parallel()
		var arr HexColors
		assert.Error(t, arr.Scan(1))
	})
}
