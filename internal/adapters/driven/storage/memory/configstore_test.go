package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("game.difficulty", "strict"))
	require.NoError(t, store.Set("game.show_map", true))
	require.NoError(t, store.Set("dataset.retries", 3))

	assert.Equal(t, "strict", store.GetString("game.difficulty"))
	assert.True(t, store.GetBool("game.show_map"))
	assert.Equal(t, 3, store.GetInt("dataset.retries"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key", 42))
	assert.Empty(t, store.GetString("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("list", []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))

	require.NoError(t, store.Set("anylist", []any{"x", 1, "y"}))
	assert.Equal(t, []string{"x", "y"}, store.GetStringSlice("anylist"))

	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_NoopPersistence(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
