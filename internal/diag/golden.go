package diag

import (
	"fmt"
	"strings"

	"vhdlfmt/internal/source"
)

// FormatShort renders one line per diagnostic:
//
//	path:line:col: SEVERITY ID: message
//
// Diagnostics are rendered in bag order; call Sort first for stable output.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).Path
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message)
	}
	return b.String()
}
