package token

import (
	"testing"
)

func TestLookupKeyword_CaseInsensitive(t *testing.T) {
	cases := map[string]Kind{
		"configuration":    KwConfiguration,
		"CONFIGURATION":    KwConfiguration,
		"Configuration":    KwConfiguration,
		"end":              KwEnd,
		"For":              KwFor,
		"vunit":            KwVunit,
		"others":           KwOthers,
		"ALL":              KwAll,
		"assume_guarantee": KwAssumeGuarantee,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	for _, s := range []string{"cfg", "entity_name", "rtl", "std_logic", "\\end\\", "fore"} {
		if k, ok := LookupKeyword(s); ok {
			t.Errorf("LookupKeyword(%q) = %v, want not a keyword", s, k)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Lib.FOO"); got != "lib.foo" {
		t.Errorf("Fold = %q", got)
	}
	if got := Fold(`\Mixed\`); got != `\Mixed\` {
		t.Errorf("extended identifiers must keep case, got %q", got)
	}
	// U+212A KELVIN SIGN folds to 'k'.
	if got := Fold("Key"); got != "key" {
		t.Errorf("Fold(kelvin) = %q", got)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KwEnd:      "end",
		Semicolon:  ";",
		Arrow:      "=>",
		Ident:      "Ident",
		EOF:        "EOF",
		QueSlashEq: "?/=",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
	if !KwFor.IsKeyword() || Semicolon.IsKeyword() || Ident.IsKeyword() {
		t.Error("IsKeyword classification is wrong")
	}
	if !Comma.IsDelimiter() || KwXor.IsDelimiter() {
		t.Error("IsDelimiter classification is wrong")
	}
}
