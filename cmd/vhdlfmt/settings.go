package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/project"
)

// settings are the effective fmt options after merging vhdlfmt.toml and flags.
type settings struct {
	manifest *project.Manifest
	format   format.Options
	filter   driver.FileFilter
	cache    bool
	cacheDir string
}

// loadManifest honours --config, otherwise searches upwards from the working
// directory. A missing file is not an error.
func loadManifest(cmd *cobra.Command) (*project.Manifest, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return project.LoadManifestFile(path)
	}
	m, _, err := project.LoadManifest(".")
	return m, err
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	m, err := loadManifest(cmd)
	if err != nil {
		return settings{}, err
	}
	s := settings{manifest: m, cache: true}
	if m != nil {
		cfg := m.Config
		s.format = format.Options{
			IndentWidth: cfg.Format.IndentWidth,
			UseTabs:     cfg.Format.UseTabs,
			MaxDepth:    cfg.Format.MaxDepth,
		}
		s.filter = driver.FileFilter{Extensions: cfg.Files.Extensions, Exclude: cfg.Files.Exclude}
		if cfg.Cache.Enabled != nil {
			s.cache = *cfg.Cache.Enabled
		}
		s.cacheDir = m.CacheDir()
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		indent, err := flags.GetInt("indent")
		if err != nil {
			return settings{}, err
		}
		if indent < 0 || indent > 16 {
			return settings{}, fmt.Errorf("--indent must be between 0 and 16, got %d", indent)
		}
		s.format.IndentWidth = indent
	}
	if flags.Changed("tabs") {
		if s.format.UseTabs, err = flags.GetBool("tabs"); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("exclude") {
		excl, err := flags.GetStringSlice("exclude")
		if err != nil {
			return settings{}, err
		}
		s.filter.Exclude = append(s.filter.Exclude, excl...)
	}
	if noCache, err := flags.GetBool("no-cache"); err != nil {
		return settings{}, err
	} else if noCache {
		s.cache = false
	}
	return s, s.filter.Validate()
}

func (s settings) openCache() (*driver.DiskCache, error) {
	if !s.cache {
		return nil, nil
	}
	if s.cacheDir != "" {
		return driver.OpenDiskCacheAt(s.cacheDir)
	}
	return driver.OpenDiskCache("vhdlfmt")
}
