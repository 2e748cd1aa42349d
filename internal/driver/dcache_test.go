package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlfmt/internal/format"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "c"))
	require.NoError(t, err)

	key := CacheKey([]byte("content"), format.Options{})
	var got DiskPayload
	hit, err := cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Put(key, &DiskPayload{Path: "a.vhd", Formatted: []byte("x\n"), Key: key}))
	hit, err = cache.Get(key, &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "a.vhd", got.Path)
	assert.Equal(t, []byte("x\n"), got.Formatted)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, diskCacheSchemaVersion, got.Schema)

	require.NoError(t, cache.DropAll())
	hit, err = cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDiskCacheCorruptEntry(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)
	key := CacheKey([]byte("x"), format.Options{})
	p := cache.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte{0xc1}, 0o644))

	var got DiskPayload
	_, err = cache.Get(key, &got)
	require.ErrorContains(t, err, "decode cache entry")
}

func TestOpenDiskCacheHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	cache, err := OpenDiskCache("vhdlfmt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "vhdlfmt"), cache.Dir())
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	a := CacheKey([]byte("x"), format.Options{IndentWidth: 4})
	b := CacheKey([]byte("x"), format.Options{IndentWidth: 4, UseTabs: true})
	c := CacheKey([]byte("y"), format.Options{IndentWidth: 4})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, CacheKey([]byte("x"), format.Options{IndentWidth: 4}))

	var nilCache *DiskCache
	require.NoError(t, nilCache.Put(a, &DiskPayload{}))
	hit, err := nilCache.Get(a, &DiskPayload{})
	require.NoError(t, err)
	assert.False(t, hit)
}
