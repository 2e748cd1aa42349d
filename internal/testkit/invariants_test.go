package testkit

import (
	"testing"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func parse(t *testing.T, src string) (*token.Stream, *ast.DesignFile) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.vhd", []byte(src)))
	bag := diag.NewBag(16)
	rep := &diag.BagReporter{Bag: bag}
	ts := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	res := parser.ParseFile(ts, parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %+v", bag.Items())
	}
	return ts, res.File
}

func TestCheckSpanInvariantsOnValidFile(t *testing.T) {
	ts, file := parse(t, `library work;
configuration a of e is
    use work.p.all;
    for rtl
        for u0: comp
            use entity work.x(y) port map (p => q);
            for arch
            end for;
        end for;
    end for;
end;
configuration b of e is
    for rtl
    end for;
end;
`)
	if err := CheckSpanInvariants(ts, file); err != nil {
		t.Fatal(err)
	}
}

func TestCheckSpanInvariantsDetectsViolations(t *testing.T) {
	ts, file := parse(t, "configuration a of e is for rtl end for; end;")

	broken := *file.Units[0]
	blk := *broken.Block
	blk.Span = token.NewSpan(broken.Span.Start, broken.Span.End+1)
	broken.Block = &blk
	if err := CheckSpanInvariants(ts, &ast.DesignFile{Units: []*ast.ConfigurationDeclaration{&broken}, EOF: file.EOF}); err == nil {
		t.Error("expected error for block span escaping its parent")
	}

	dup := &ast.DesignFile{Units: []*ast.ConfigurationDeclaration{file.Units[0], file.Units[0]}, EOF: file.EOF}
	if err := CheckSpanInvariants(ts, dup); err == nil {
		t.Error("expected error for overlapping units")
	}

	if err := CheckSpanInvariants(nil, file); err == nil {
		t.Error("expected error for nil stream")
	}
}
