package fuzztests

import (
	"errors"
	"testing"
	"time"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.vhd", input))

		bag := diag.NewBag(128)
		rep := &diag.BagReporter{Bag: bag}
		ts := lexer.Tokenize(file, lexer.Options{Reporter: rep})
		res := parser.ParseFile(ts, parser.Options{Reporter: rep, MaxErrors: 128})
		if res.File == nil {
			t.Fatal("parser returned nil design file")
		}
		if bag.HasErrors() {
			return
		}
		if err := testkit.CheckSpanInvariants(ts, res.File); err != nil {
			t.Fatalf("span invariants violated: %v", err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.vhd", input))
			ts := lexer.Tokenize(file, lexer.Options{})
			_ = parser.ParseFile(ts, parser.Options{Reporter: &diag.BagReporter{Bag: diag.NewBag(128)}, MaxErrors: 128})
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected on input of %d bytes", len(input))
		}
	})
}

// FuzzFormatRoundTrip formats every input that parses cleanly and checks that
// the output re-parses to the same structure and is stable.
func FuzzFormatRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.vhd", input))
		bag := diag.NewBag(128)
		rep := &diag.BagReporter{Bag: bag}
		ts := lexer.Tokenize(file, lexer.Options{Reporter: rep})
		res := parser.ParseFile(ts, parser.Options{Reporter: rep, MaxErrors: 128})
		if bag.HasErrors() {
			return
		}

		if _, err := format.FormatFile(ts, res.File, format.Options{}); err != nil {
			if errors.Is(err, format.ErrUnsupportedConstruct) {
				return
			}
			t.Fatalf("format failed: %v", err)
		}
		if ok, msg := format.CheckRoundTrip(file, format.Options{}, 128); !ok {
			t.Fatalf("%s\ninput:\n%s", msg, input)
		}
	})
}
