package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func parseSource(t *testing.T, src string) (*token.Stream, *ast.DesignFile) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("fmt.vhd", []byte(src)))
	bag := diag.NewBag(128)
	ts, file := parseOnce(sf, bag)
	if bag.HasErrors() {
		issues := make([]string, 0, bag.Len())
		for _, d := range bag.Items() {
			issues = append(issues, d.Code.ID()+": "+d.Message)
		}
		t.Fatalf("parse failed: %v", issues)
	}
	return ts, file
}

func formatSource(t *testing.T, src string, opt Options) string {
	t.Helper()
	ts, file := parseSource(t, src)
	out, err := FormatFile(ts, file, opt)
	require.NoError(t, err)
	return string(out)
}

func checkFormatted(t *testing.T, input, want string, opt Options) {
	t.Helper()
	got := formatSource(t, input, opt)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("formatted output mismatch (-want +got):\n%s", diff)
	}
	again := formatSource(t, got, opt)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Fatalf("formatting is not idempotent (-first +second):\n%s", diff)
	}
}

// lexemes returns every token and comment text of src in order.
func lexemes(t *testing.T, src string) []string {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("lex.vhd", []byte(src)))
	ts := lexer.Tokenize(sf, lexer.Options{})
	var out []string
	for _, tok := range ts.Tokens() {
		for _, c := range tok.Leading {
			out = append(out, strings.TrimRight(c.Text, " \t"))
		}
		if tok.Text != "" {
			out = append(out, tok.Text)
		}
		for _, c := range tok.Trailing {
			out = append(out, strings.TrimRight(c.Text, " \t"))
		}
	}
	return out
}
