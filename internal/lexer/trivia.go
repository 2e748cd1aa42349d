package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// collectLeadingTrivia skips whitespace before the next token and gathers the
// comments found on the way. It returns those comments and the number of line
// breaks between the last of them (or the previous token) and the token.
func (lx *Lexer) collectLeadingTrivia() ([]token.Trivia, int) {
	var out []token.Trivia
	newlines := 0
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == '\n':
			newlines++
			lx.cursor.Bump()
		case isSpace(b):
			lx.cursor.Bump()
		default:
			tr, ok := lx.scanComment()
			if !ok {
				return out, newlines
			}
			tr.BlankBefore = newlines >= 2
			out = append(out, tr)
			newlines = 0
		}
	}
	return out, newlines
}

// collectTrailingTrivia gathers comments that start on the same line as the
// token just scanned. A line comment ends the run.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for {
		mark := lx.cursor.Mark()
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tr, ok := lx.scanComment()
		if !ok {
			lx.cursor.Reset(mark)
			return out
		}
		out = append(out, tr)
		if tr.Kind == token.TriviaLineComment {
			return out
		}
	}
}

// scanComment consumes "-- ..." up to (not including) the newline, or
// "/* ... */" including embedded newlines.
func (lx *Lexer) scanComment() (token.Trivia, bool) {
	start := lx.cursor.Mark()
	b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1)
	switch {
	case b0 == '-' && b1 == '-':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		text := lx.text(start)
		// \r перед \n не часть комментария
		for len(text) > 0 && text[len(text)-1] == '\r' {
			text = text[:len(text)-1]
		}
		return token.Trivia{Kind: token.TriviaLineComment, Span: lx.cursor.SpanFrom(start), Text: text}, true
	case b0 == '/' && b1 == '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		return token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(start)}, true
	}
	return token.Trivia{}, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}
