package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"vhdlfmt/internal/format"
	"vhdlfmt/internal/project"
	"vhdlfmt/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache remembers formatting outcomes keyed by content and options, so
// unchanged files are not re-parsed on the next run.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the msgpack record stored per key.
type DiskPayload struct {
	Schema uint16

	// Path of the file that produced the entry; informational only.
	Path string
	// Clean is true when the input was already canonical.
	Clean bool
	// Formatted holds the printer output when Clean is false.
	Formatted []byte

	// Key repeats the lookup key to detect misplaced files.
	Key      project.Digest
	StoredAt time.Time
}

// CacheKey derives the cache key for raw file bytes under opt. The tool
// version takes part so an upgraded printer never reuses stale output.
func CacheKey(content []byte, opt format.Options) project.Digest {
	settings := fmt.Sprintf("vhdlfmt/%s;indent=%d;tabs=%t;depth=%d",
		version.Version, opt.IndentWidth, opt.UseTabs, opt.MaxDepth)
	return project.Combine(project.Sum(content), project.Sum([]byte(settings)))
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt uses dir directly, creating it when missing.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.Hex()
	return filepath.Join(c.dir, "fmt", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = diskCacheSchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(tmp, p)
}

// Get reads a payload. Entries written by another schema version count as
// misses.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	if payload.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	*out = payload
	return true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "fmt"))
}
