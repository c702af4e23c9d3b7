package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Seed(t *testing.T) {
	store := NewConfigStore(map[string]any{"github.use_api": false, "cache.ttl_hours": int64(3)})

	_, ok := store.Get("github.use_api")
	assert.True(t, ok)
	assert.False(t, store.GetBool("github.use_api"))
	assert.Equal(t, 3, store.GetInt("cache.ttl_hours"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("schemas.dir", "/s"))
	require.NoError(t, store.Set("names", []string{"a"}))

	assert.Equal(t, "/s", store.GetString("schemas.dir"))
	assert.Equal(t, []string{"a"}, store.GetStringSlice("names"))
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("schemas.dir"))
	assert.Nil(t, store.GetStringSlice("schemas.dir"))
}

func TestConfigStore_NoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "memory://config", store.Path())
}
