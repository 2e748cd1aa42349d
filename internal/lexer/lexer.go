package lexer

import (
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	prev   token.Kind // kind of the last emitted token, drives tick disambiguation
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Invalid,
	}
}

// Next returns the next significant token with its comment trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	leading, newlines := lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{
			Kind:           token.EOF,
			Span:           lx.emptySpan(),
			Leading:        leading,
			NewlinesBefore: newlines,
		}
	}

	var tok token.Token
	ch := lx.cursor.Peek()
	switch {
	case isLetterByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		if r, _ := lx.peekRune(); isIdentStartRune(r) {
			tok = lx.scanIdentOrKeyword()
		} else {
			tok = lx.scanUnknown()
		}
	case ch == '\\':
		tok = lx.scanExtendedIdent()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString(lx.cursor.Mark(), token.StringLit)
	case ch == '\'' && lx.isCharLiteral():
		tok = lx.scanCharLiteral()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = leading
	tok.NewlinesBefore = newlines
	tok.Trailing = lx.collectTrailingTrivia()
	lx.prev = tok.Kind
	return tok
}

// Done reports whether EOF has been returned.
func (lx *Lexer) Done() bool { return lx.done }

// EmptySpan returns a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span { return lx.emptySpan() }

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// Tokenize lexes the whole file into a stream ending with EOF.
func Tokenize(file *source.File, opts Options) *token.Stream {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return token.NewStream(file, toks)
}
