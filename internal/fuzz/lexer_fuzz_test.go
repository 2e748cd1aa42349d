package fuzztests

import (
	"testing"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.vhd", input))

		bag := diag.NewBag(64)
		ts := lexer.Tokenize(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
		if ts.Len() == 0 || ts.Kind(ts.EOF()) != token.EOF {
			t.Fatalf("stream does not end with EOF")
		}

		// token spans must be ordered and inside the file
		var prevEnd uint32
		for i, tok := range ts.Tokens() {
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %d (%s) has span %v after offset %d", i, tok.Kind, tok.Span, prevEnd)
			}
			if int(tok.Span.End) > len(file.Content) {
				t.Fatalf("token %d span %v exceeds file size %d", i, tok.Span, len(file.Content))
			}
			prevEnd = tok.Span.End
		}
	})
}
