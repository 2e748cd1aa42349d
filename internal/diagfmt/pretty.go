package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/source"
)

type palette struct {
	err, warn, info, caret, gutter, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.caret, p.gutter, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics in a human-readable form, in bag order (call
// bag.Sort() first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with a ^~~~ underline under the primary span
// and, when enabled, its notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		path := formatPath(file.Path, opts.PathMode, opts.BaseDir)

		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.bold.Sprintf("%s:%d:%d", path, start.Line, start.Col),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.severity(d.Severity).Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(w, p, file, start, end, opts.Context)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			nf := fs.Get(note.Span.File)
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				p.info.Sprint("note:"),
				formatPath(nf.Path, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, note.Msg)
		}
	}
}

func writeSnippet(w io.Writer, p palette, file *source.File, start, end source.LineCol, context int) {
	first := uint32(1)
	if context > 0 && start.Line > uint32(context) {
		first = start.Line - uint32(context)
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), file.GetLine(ln))
	}

	line := file.GetLine(start.Line)
	from := clampCol(start.Col, line)
	to := len(line)
	if end.Line == start.Line {
		to = max(clampCol(end.Col, line), from)
	}
	underline := caretPrefix(line[:from]) + "^"
	if rest := runewidth.StringWidth(line[from:to]); rest > 1 {
		underline += strings.Repeat("~", rest-1)
	}
	fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), p.caret.Sprint(underline))
}

// clampCol converts a 1-based byte column into an offset inside line.
func clampCol(col uint32, line string) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

// caretPrefix blanks out text while keeping tabs, so the caret lines up
// under wide runes and tab-indented code alike.
func caretPrefix(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
