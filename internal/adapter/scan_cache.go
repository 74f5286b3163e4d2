package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
	"cleanarch.dev/pkg/cleanarch/pkg"
)

const (
	scanCacheFile = "scan-cache.gob"
	// DefaultScanCacheSize bounds the number of files kept in memory.
	DefaultScanCacheSize = 65536
)

// ScanCache remembers the units scanned from a file so unchanged files are
// not parsed again. Keys combine the file hash with its import path.
type ScanCache interface {
	Get(key string) ([]m.UnitSpec, bool)
	Put(key string, units []m.UnitSpec)
	Load(dir m.FilePath) error
	Save(dir m.FilePath) error
}

// ScanCacheKey builds the cache key of a file scanned under importPath.
func ScanCacheKey(file m.File, importPath string) string {
	return file.Hash + "@" + importPath
}

type scanCacheEntry struct {
	Key   string
	Units []cachedUnit
}

// cachedUnit stores abstractness as a plain value: gob drops pointers to
// zero values, which would turn a concrete unit into one without
// abstractness.
type cachedUnit struct {
	Spec     m.UnitSpec
	Abstract int8 // 0 not applicable, 1 concrete, 2 abstract
}

func encodeUnits(units []m.UnitSpec) []cachedUnit {
	cached := make([]cachedUnit, 0, len(units))

	for _, unit := range units {
		entry := cachedUnit{Spec: unit}
		entry.Spec.Abstract = nil

		if unit.Abstract != nil {
			entry.Abstract = 1
			if *unit.Abstract {
				entry.Abstract = 2
			}
		}

		cached = append(cached, entry)
	}

	return cached
}

func decodeUnits(cached []cachedUnit) []m.UnitSpec {
	units := make([]m.UnitSpec, 0, len(cached))

	for _, entry := range cached {
		unit := entry.Spec
		if entry.Abstract != 0 {
			unit.Abstract = boolPtr(entry.Abstract == 2)
		}

		units = append(units, unit)
	}

	return units
}

// LRUScanCache is a ScanCache held in an LRU and persisted as a gob stream.
// It is safe for concurrent use.
type LRUScanCache struct {
	entries *lru.Cache[string, []m.UnitSpec]

	mu   sync.Mutex
	used map[string]struct{}
}

// NewLRUScanCache creates a cache holding at most size files.
func NewLRUScanCache(size int) (*LRUScanCache, error) {
	if size <= 0 {
		size = DefaultScanCacheSize
	}

	entries, err := lru.New[string, []m.UnitSpec](size)
	if err != nil {
		return nil, fmt.Errorf("create scan cache: %w", err)
	}

	return &LRUScanCache{entries: entries, used: make(map[string]struct{})}, nil
}

// Get returns the cached units for key and marks the entry as used.
func (c *LRUScanCache) Get(key string) ([]m.UnitSpec, bool) {
	units, ok := c.entries.Get(key)
	if ok {
		c.markUsed(key)
	}

	return units, ok
}

// Put stores the units scanned for key.
func (c *LRUScanCache) Put(key string, units []m.UnitSpec) {
	c.entries.Add(key, units)
	c.markUsed(key)
}

func (c *LRUScanCache) markUsed(key string) {
	c.mu.Lock()
	c.used[key] = struct{}{}
	c.mu.Unlock()
}

// Load reads the cache file of a previous run from dir. A missing file is
// not an error.
func (c *LRUScanCache) Load(dir m.FilePath) error {
	path := filepath.Join(string(dir), scanCacheFile)

	spill, err := pkg.OpenFileSpill[scanCacheEntry](path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("open scan cache: %w", err)
	}

	defer func() {
		_ = spill.Close()
	}()

	err = spill.Range(func(_ uint64, entry scanCacheEntry) error {
		c.entries.Add(entry.Key, decodeUnits(entry.Units))
		return nil
	})
	if err != nil {
		return fmt.Errorf("read scan cache: %w", err)
	}

	slog.Debug("scan cache loaded", "path", path, "entries", spill.Len())

	return nil
}

// Save rewrites the cache file in dir with the entries used since the cache
// was created. Entries of deleted or changed files are dropped.
func (c *LRUScanCache) Save(dir m.FilePath) error {
	c.mu.Lock()
	keys := make([]string, 0, len(c.used))

	for key := range c.used {
		keys = append(keys, key)
	}
	c.mu.Unlock()

	slices.Sort(keys)

	path := filepath.Join(string(dir), scanCacheFile)
	tmp := path + ".tmp"

	spill, err := pkg.CreateFileSpill[scanCacheEntry](tmp)
	if err != nil {
		return fmt.Errorf("create scan cache: %w", err)
	}

	entries := make([]scanCacheEntry, 0, len(keys))

	for _, key := range keys {
		if units, ok := c.entries.Peek(key); ok {
			entries = append(entries, scanCacheEntry{Key: key, Units: encodeUnits(units)})
		}
	}

	if err := spill.AppendBatch(entries); err != nil {
		_ = spill.Close()
		return fmt.Errorf("write scan cache: %w", err)
	}

	if err := spill.Close(); err != nil {
		return fmt.Errorf("close scan cache: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace scan cache: %w", err)
	}

	slog.Debug("scan cache saved", "path", path, "entries", len(keys))

	return nil
}

// NoScanCache is the ScanCache used with --no-cache: it never hits and
// persists nothing.
type NoScanCache struct{}

// Get implements ScanCache.
func (NoScanCache) Get(string) ([]m.UnitSpec, bool) { return nil, false }

// Put implements ScanCache.
func (NoScanCache) Put(string, []m.UnitSpec) {}

// Load implements ScanCache.
func (NoScanCache) Load(m.FilePath) error { return nil }

// Save implements ScanCache.
func (NoScanCache) Save(m.FilePath) error { return nil }
