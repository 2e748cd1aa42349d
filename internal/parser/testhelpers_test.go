package parser

import (
	"fmt"
	"strings"
	"testing"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func tokenize(t *testing.T, src string) (*token.Stream, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vhd", []byte(src))
	bag := diag.NewBag(0)
	ts := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return ts, bag
}

func parseSource(t *testing.T, src string, opts Options) (Result, *token.Stream) {
	t.Helper()
	ts, bag := tokenize(t, src)
	if opts.Reporter == nil {
		opts.Reporter = &diag.BagReporter{Bag: bag}
	}
	return ParseFile(ts, opts), ts
}

func spanText(ts *token.Stream, sp token.Span) string {
	parts := make([]string, 0, sp.Len())
	for id := sp.Start; id <= sp.End; id++ {
		tok, _ := ts.Get(id)
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}

func tokText(ts *token.Stream, id token.ID) string {
	tok, ok := ts.Get(id)
	if !ok {
		return "<none>"
	}
	return tok.Text
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
