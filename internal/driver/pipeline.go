package driver

import (
	"fortio.org/safecast"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

// DefaultMaxDiagnostics bounds the diagnostics kept per file when the caller
// passes a non-positive limit.
const DefaultMaxDiagnostics = 256

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *token.Stream
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(diagLimit(maxDiagnostics))
	ts := lexer.Tokenize(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return &TokenizeResult{FileSet: fs, File: file, Stream: ts, Bag: bag}, nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  *token.Stream
	Design  *ast.DesignFile
	Bag     *diag.Bag
}

// Parse loads path, lexes and parses it.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID), maxDiagnostics, 0), nil
}

// ParseSource parses in-memory content registered under name (stdin, tests).
// maxNesting caps block configuration depth; 0 keeps the parser default.
func ParseSource(name string, content []byte, maxDiagnostics, maxNesting int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddNormalized(name, content)
	return parseFile(fs, fs.Get(fileID), maxDiagnostics, maxNesting)
}

func parseFile(fs *source.FileSet, file *source.File, maxDiagnostics, maxNesting int) *ParseResult {
	bag := diag.NewBag(diagLimit(maxDiagnostics))
	rep := &diag.BagReporter{Bag: bag}
	ts := lexer.Tokenize(file, lexer.Options{Reporter: rep})

	maxErrors, convErr := safecast.Conv[uint](bag.Cap())
	if convErr != nil {
		maxErrors = 0
	}
	res := parser.ParseFile(ts, parser.Options{Reporter: rep, MaxErrors: maxErrors, MaxNesting: maxNesting})
	return &ParseResult{FileSet: fs, File: file, Stream: ts, Design: res.File, Bag: bag}
}

func diagLimit(n int) int {
	if n <= 0 {
		return DefaultMaxDiagnostics
	}
	return n
}
