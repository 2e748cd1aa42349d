package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func parse(t *testing.T, src string) (*source.FileSet, *token.Stream, *parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("cfg.vhd", []byte(src)))
	bag := diag.NewBag(16)
	rep := &diag.BagReporter{Bag: bag}
	ts := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	res := parser.ParseFile(ts, parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	return fs, ts, &res
}

const treeSource = `library work; -- lib
configuration cfg of top is
    for rtl
        for u0: comp
            use entity work.impl(arch)
                generic map (
                    W => 8
                );
        end for;
    end for;
end configuration cfg;
`

func TestFormatTreePretty(t *testing.T) {
	fs, ts, res := parse(t, treeSource)
	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, BuildDesignTree(ts, res.File), fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"DesignFile \"cfg.vhd\"",
		"└─ Configuration (span: 2:1-11:23)",
		"   ├─ LibraryClause \"library work;\"",
		"   ├─ Name \"cfg\"",
		"   ├─ Entity \"top\"",
		"   └─ BlockConfiguration",
		"BlockSpec \"rtl\"",
		"ComponentSpecification \"for u0: comp\"",
		"EntityAspect \"entity work.impl(arch)\"",
		"GenericMap",
		"Formal \"W\"",
		"Actual \"8\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatTreeJSON(t *testing.T) {
	_, ts, res := parse(t, treeSource)
	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, BuildDesignTree(ts, res.File)); err != nil {
		t.Fatal(err)
	}
	var root TreeNode
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if root.Type != "DesignFile" || len(root.Children) != 1 {
		t.Fatalf("root = %+v", root)
	}
	cfg := root.Children[0]
	if cfg.Type != "Configuration" || cfg.Children[len(cfg.Children)-1].Type != "BlockConfiguration" {
		t.Errorf("configuration children = %+v", cfg.Children)
	}
}

func TestConfigurationSpecificationTree(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("spec.vhd", []byte("for all : comp use open;")))
	ts := lexer.Tokenize(sf, lexer.Options{})
	cs, ok := parser.ParseConfigurationSpecification(ts, parser.Options{})
	if !ok {
		t.Fatal("parse failed")
	}
	node := ConfigurationSpecificationTree(ts, cs)
	if len(node.Children) != 2 || node.Children[1].Children[0].Type != "OpenAspect" {
		t.Errorf("tree = %+v", node)
	}
}

func TestFormatTokens(t *testing.T) {
	fs, ts, _ := parse(t, "-- head\n\nconfiguration c of e is for a end for; end; -- tail\n")

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, ts, fs); err != nil {
		t.Fatal(err)
	}
	out := pretty.String()
	if !strings.Contains(out, "LineComment \"-- head\"") {
		t.Errorf("leading comment missing:\n%s", out)
	}
	if !strings.Contains(out, "(trailing LineComment \"-- tail\")") {
		t.Errorf("trailing comment missing:\n%s", out)
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, ts); err != nil {
		t.Fatal(err)
	}
	var toks []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &toks); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(toks) != ts.Len() {
		t.Fatalf("got %d tokens, want %d", len(toks), ts.Len())
	}
	if len(toks[0].Leading) != 1 || toks[0].NewlinesBefore < 2 {
		t.Errorf("first token = %+v", toks[0])
	}
}
