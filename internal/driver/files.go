package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions lists the file extensions collected from directories.
var DefaultExtensions = []string{".vhd", ".vhdl"}

// ErrNoSourceFiles is returned when the given paths contain no VHDL files.
var ErrNoSourceFiles = errors.New("no source files found")

// FileFilter selects files while walking directories.
type FileFilter struct {
	// Extensions are matched case-insensitively; empty means DefaultExtensions.
	Extensions []string
	// Exclude holds doublestar patterns matched against slash separated paths
	// relative to the walked directory.
	Exclude []string
}

// Validate checks every exclude pattern.
func (f FileFilter) Validate() error {
	for _, pattern := range f.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

func (f FileFilter) hasExtension(path string) bool {
	exts := f.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(exts, func(e string) bool {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		return strings.EqualFold(e, ext)
	})
}

func (f FileFilter) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range f.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// CollectSourceFiles expands paths into a sorted, de-duplicated file list.
// Directories are walked recursively; explicitly named files are always kept.
func CollectSourceFiles(ctx context.Context, paths []string, filter FileFilter) ([]string, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, relErr := filepath.Rel(p, path)
			if relErr != nil {
				rel = path
			}
			if d.IsDir() {
				if rel != "." && filter.excluded(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if filter.hasExtension(path) && !filter.excluded(rel) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return files, nil
}
