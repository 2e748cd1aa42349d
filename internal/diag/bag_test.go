package diag

import (
	"testing"

	"vhdlfmt/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(SevWarning, SynUnexpectedToken, source.Span{}, "w")) {
		t.Fatal("first add rejected")
	}
	if b.HasErrors() {
		t.Error("warning must not count as error")
	}
	b.Add(New(SevError, SynExpectSemicolon, source.Span{}, "e"))
	if b.Add(New(SevError, SynExpectSemicolon, source.Span{}, "dropped")) {
		t.Error("limit not enforced")
	}
	if !b.HasErrors() || !b.HasWarnings() || b.Len() != 2 {
		t.Errorf("unexpected bag state: len=%d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevError, SynExpectSemicolon, source.Span{Start: 9, End: 10}, "late"))
	b.Add(New(SevWarning, SynUnexpectedToken, source.Span{Start: 1, End: 2}, "early"))
	b.Add(New(SevError, SynExpectSemicolon, source.Span{Start: 9, End: 10}, "late again"))
	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Errorf("order = %q, %q", items[0].Message, items[1].Message)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cfg.vhd", []byte("configuration\nfoo"))
	out := FormatShort([]Diagnostic{
		New(SevError, SynExpectIdentifier, source.Span{File: id, Start: 14, End: 17}, "expected identifier"),
	}, fs)
	want := "cfg.vhd:2:1: ERROR SYN2003: expected identifier\n"
	if out != want {
		t.Errorf("FormatShort = %q, want %q", out, want)
	}
}
