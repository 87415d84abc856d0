package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Set("key", "value"))
	value, ok := store.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	require.NoError(t, store.Set("key", ""))
	value, ok = store.Get("key")
	assert.True(t, ok)
	assert.Empty(t, value)
}
