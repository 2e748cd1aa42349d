package driver

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between the original and formatted content of
// a result. It is empty when nothing changed.
func Diff(r FormatResult) (string, error) {
	if !r.Changed || r.Formatted == nil {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(r.Original)),
		B:        difflib.SplitLines(string(r.Formatted)),
		FromFile: r.Path,
		ToFile:   r.Path + " (formatted)",
		Context:  3,
	})
}
