package format

import (
	"bytes"
	"fmt"
	"strings"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

// CheckRoundTrip formats the file, re-parses the output and verifies that the
// configuration structure survived and that a second pass changes nothing.
func CheckRoundTrip(sf *source.File, opt Options, maxDiag int) (ok bool, msg string) {
	origBag := diag.NewBag(maxDiag)
	ts, file := parseOnce(sf, origBag)
	if origBag.HasErrors() {
		return false, "fmt-check: initial parse has errors"
	}

	formatted, err := FormatFile(ts, file, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	fs2 := source.NewFileSet()
	rebuilt := fs2.Get(fs2.AddVirtual(sf.Path, formatted))
	newBag := diag.NewBag(maxDiag)
	ts2, file2 := parseOnce(rebuilt, newBag)
	if newBag.HasErrors() {
		return false, "fmt-check: reparse failed"
	}
	if a, b := Shape(ts, file), Shape(ts2, file2); a != b {
		return false, fmt.Sprintf("fmt-check: structure differs after round-trip:\n  before: %s\n  after:  %s", a, b)
	}

	again, err := FormatFile(ts2, file2, opt)
	if err != nil {
		return false, "fmt-check: second pass failed: " + err.Error()
	}
	if !bytes.Equal(formatted, again) {
		return false, "fmt-check: formatting is not idempotent"
	}
	return true, "fmt-check: OK"
}

func parseOnce(sf *source.File, bag *diag.Bag) (*token.Stream, *ast.DesignFile) {
	rep := &diag.BagReporter{Bag: bag}
	ts := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	res := parser.ParseFile(ts, parser.Options{Reporter: rep, MaxErrors: uint(max(bag.Cap(), 0))})
	return ts, res.File
}

// Shape renders the structure of file with names spelled out, ignoring
// whitespace and comments.
func Shape(ts *token.Stream, file *ast.DesignFile) string {
	var sb strings.Builder
	s := shaper{ts: ts, sb: &sb}
	for _, unit := range file.Units {
		s.configuration(unit)
	}
	return sb.String()
}

type shaper struct {
	ts *token.Stream
	sb *strings.Builder
}

func (s shaper) span(sp token.Span) {
	for id := sp.Start; id <= sp.End && id.IsValid(); id++ {
		tok, _ := s.ts.Get(id)
		s.sb.WriteString(token.Fold(tok.Text))
		s.sb.WriteByte(' ')
	}
}

func (s shaper) configuration(cfg *ast.ConfigurationDeclaration) {
	for _, item := range cfg.Context {
		s.span(item.TokenSpan())
	}
	s.sb.WriteString("config{")
	for _, d := range cfg.Decls {
		s.span(d.TokenSpan())
	}
	for _, vu := range cfg.VUnitBindings {
		s.span(vu.Span)
	}
	s.block(cfg.Block)
	s.sb.WriteString("}")
}

func (s shaper) block(blk *ast.BlockConfiguration) {
	s.sb.WriteString("block{")
	s.span(blk.BlockSpec.Span)
	for _, item := range blk.Items {
		switch item := item.(type) {
		case *ast.BlockConfiguration:
			s.block(item)
		case *ast.ComponentConfiguration:
			s.component(item)
		}
	}
	s.sb.WriteString("}")
}

func (s shaper) component(cc *ast.ComponentConfiguration) {
	s.sb.WriteString("component{")
	s.span(cc.Spec.Span)
	if cc.Binding != nil {
		s.span(cc.Binding.Span)
	}
	for _, vu := range cc.VUnitBindings {
		s.span(vu.Span)
	}
	if cc.Block != nil {
		s.block(cc.Block)
	}
	s.sb.WriteString("}")
}
