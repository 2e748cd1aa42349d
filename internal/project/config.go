package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

// Config mirrors vhdlfmt.toml. Zero values mean "use the built-in default".
type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`
	Cache  CacheConfig  `toml:"cache"`
}

type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
	MaxDepth    int  `toml:"max_depth"`
}

type FilesConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

type CacheConfig struct {
	// Enabled is a pointer so an absent key keeps the CLI default.
	Enabled *bool  `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Manifest is a loaded vhdlfmt.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// LoadManifest finds and decodes vhdlfmt.toml starting at startDir.
// ok is false when no file exists anywhere up the tree.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadManifestFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadManifestFile decodes an explicit config path.
func LoadManifestFile(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	cfg, err := LoadConfig(abs)
	if err != nil {
		return nil, err
	}
	return &Manifest{Path: abs, Root: filepath.Dir(abs), Config: cfg}, nil
}

// LoadConfig decodes and validates a single TOML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and glob syntax.
func (c *Config) Validate() error {
	if c.Format.IndentWidth < 0 || c.Format.IndentWidth > 16 {
		return fmt.Errorf("[format].indent_width must be between 0 and 16, got %d", c.Format.IndentWidth)
	}
	if c.Format.MaxDepth < 0 {
		return fmt.Errorf("[format].max_depth must not be negative, got %d", c.Format.MaxDepth)
	}
	for i, ext := range c.Files.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return fmt.Errorf("[files].extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Files.Extensions[i] = strings.ToLower(ext)
	}
	for _, pattern := range c.Files.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("[files].exclude: invalid glob %q", pattern)
		}
	}
	return nil
}

// CacheDir resolves [cache].dir against the manifest root.
func (m *Manifest) CacheDir() string {
	if m == nil || m.Config.Cache.Dir == "" {
		return ""
	}
	if filepath.IsAbs(m.Config.Cache.Dir) {
		return m.Config.Cache.Dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Cache.Dir))
}
