package ids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexID = regexp.MustCompile(`^[0-9a-f]+$`)

func TestNewLength(t *testing.T) {
	for _, length := range []int{1, 7, 16, 31, 32} {
		id, err := New(length)
		require.NoError(t, err)
		assert.Len(t, id, length)
		assert.Regexp(t, hexID, id)
	}
}

func TestNewDefaultsOnNonPositiveLength(t *testing.T) {
	id, err := New(0)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)

	id, err = New(-3)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)
}

func TestNewDefaultIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id, err := NewDefault()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
