package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_GetSet(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Set("key", "value"))
	val, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Empty(t, store.GetString("num"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("on", true))
	require.NoError(t, store.Set("str", "true"))

	assert.True(t, store.GetBool("on"))
	assert.False(t, store.GetBool("str"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("float", 48.2082))
	require.NoError(t, store.Set("int", 16))
	require.NoError(t, store.Set("str", "1.5"))

	assert.InDelta(t, 48.2082, store.GetFloat("float"), 1e-9)
	assert.InDelta(t, 16.0, store.GetFloat("int"), 1e-9)
	assert.Zero(t, store.GetFloat("str"))
	assert.Zero(t, store.GetFloat("missing"))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
