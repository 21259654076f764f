package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaNumeric(t *testing.T) {
	t.Parallel()

	assert.Len(t, AlphaNumeric(32), 32)
	assert.Empty(t, AlphaNumeric(0))
	assert.Regexp(t, `^[a-zA-Z0-9]{16}$`, AlphaNumeric(16))

	set := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		s := AlphaNumeric(10)
		if set[s] {
			t.FailNow()
		}
		set[s] = true
	}
}
