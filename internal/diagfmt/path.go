package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
)

// autoPathLimit is the length above which PathModeAuto shortens absolute paths.
const autoPathLimit = 40

func formatPath(path string, mode PathMode, baseDir string) string {
	native := filepath.FromSlash(path)
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(native); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative:
		base := baseDir
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return path
			}
			base = wd
		}
		abs, err := filepath.Abs(native)
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(base, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			return path
		}
		return filepath.ToSlash(rel)
	case PathModeBasename:
		return filepath.Base(native)
	default:
		if filepath.IsAbs(native) && len(path) > autoPathLimit {
			return filepath.Base(native)
		}
		return path
	}
}
