package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// scanString scans a "..." literal starting at the cursor; start may point at
// an earlier base specifier for bit strings. A doubled quote stands for itself.
func (lx *Lexer) scanString(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // "
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			tok := lx.emit(kind, start)
			code := diag.LexUnterminatedString
			if kind == token.BitStringLit {
				code = diag.LexBadBitString
			}
			lx.errLex(code, tok.Span, "unterminated string literal")
			return tok
		}
		if lx.cursor.Bump() == '"' {
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			return lx.emit(kind, start)
		}
	}
}

// isCharLiteral decides whether the tick at the cursor opens a character
// literal or is an attribute/qualification tick.
func (lx *Lexer) isCharLiteral() bool {
	if lx.cursor.PeekAt(2) != '\'' {
		return false
	}
	switch lx.prev {
	case token.Ident, token.RParen, token.RBracket, token.KwAll,
		token.StringLit, token.CharLit, token.AbstractLit, token.BitStringLit:
		return false
	}
	return true
}

func (lx *Lexer) scanCharLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return lx.emit(token.CharLit, start)
}

func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text)
	return tok
}
