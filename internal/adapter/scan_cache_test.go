package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

func TestScanCacheKey(t *testing.T) {
	file := m.File{ShortPath: "core/service.go", Hash: "abc"}

	assert.Equal(t, "abc@example.com/app/core", ScanCacheKey(file, "example.com/app/core"))
	assert.NotEqual(t, ScanCacheKey(file, "example.com/app/core"), ScanCacheKey(file, "example.com/app/api"))
}

func TestLRUScanCache_GetPut(t *testing.T) {
	cache, err := NewLRUScanCache(0)
	require.NoError(t, err)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	units := []m.UnitSpec{{Name: "example.com/app/core.Service", Kind: m.KindStruct}}
	cache.Put("k1", units)

	got, ok := cache.Get("k1")
	require.True(t, ok)
	assert.Equal(t, units, got)
}

func TestLRUScanCache_SaveLoad(t *testing.T) {
	dir := t.TempDir()

	cache, err := NewLRUScanCache(16)
	require.NoError(t, err)

	service := []m.UnitSpec{{
		Name:         "example.com/app/core.Service",
		Short:        "Service",
		Path:         "core/service.go",
		Kind:         m.KindStruct,
		Abstract:     boolPtr(false),
		Exported:     true,
		Dependencies: []string{"string", "example.com/app/api.Handler"},
	}}
	helper := []m.UnitSpec{{Name: "example.com/app/core.helper", Kind: m.KindFunc}}

	cache.Put("service", service)
	cache.Put("helper", helper)
	require.NoError(t, cache.Save(m.FilePath(dir)))

	_, err = os.Stat(filepath.Join(dir, scanCacheFile+".tmp"))
	assert.True(t, os.IsNotExist(err))

	// second run only touches one entry
	next, err := NewLRUScanCache(16)
	require.NoError(t, err)
	require.NoError(t, next.Load(m.FilePath(dir)))

	got, ok := next.Get("service")
	require.True(t, ok)
	assert.Equal(t, service, got)
	require.NoError(t, next.Save(m.FilePath(dir)))

	last, err := NewLRUScanCache(16)
	require.NoError(t, err)
	require.NoError(t, last.Load(m.FilePath(dir)))

	_, ok = last.Get("helper")
	assert.False(t, ok)

	got, ok = last.Get("service")
	require.True(t, ok)
	assert.Equal(t, service, got)
}

func TestLRUScanCache_LoadMissing(t *testing.T) {
	cache, err := NewLRUScanCache(4)
	require.NoError(t, err)

	require.NoError(t, cache.Load(m.FilePath(t.TempDir())))
}

func TestNoScanCache(t *testing.T) {
	var cache ScanCache = NoScanCache{}

	cache.Put("k", []m.UnitSpec{{Name: "a.B"}})

	_, ok := cache.Get("k")
	assert.False(t, ok)
	require.NoError(t, cache.Load("anywhere"))
	require.NoError(t, cache.Save("anywhere"))
}
