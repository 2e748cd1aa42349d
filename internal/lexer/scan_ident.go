package lexer

import (
	"strings"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	word := lx.text(start)
	if lx.cursor.Peek() == '"' && isBaseSpecifier(word) {
		return lx.scanString(start, token.BitStringLit)
	}
	if k, ok := token.LookupKeyword(word); ok {
		return lx.emit(k, start)
	}
	return lx.emit(token.Ident, start)
}

// scanExtendedIdent scans \...\ where a doubled backslash stands for itself.
func (lx *Lexer) scanExtendedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			tok := lx.emit(token.Ident, start)
			lx.errLex(diag.LexUnterminatedExtendedId, tok.Span, "unterminated extended identifier")
			return tok
		}
		if lx.cursor.Bump() == '\\' {
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				continue
			}
			return lx.emit(token.Ident, start)
		}
	}
}

func isBaseSpecifier(word string) bool {
	switch strings.ToLower(word) {
	case "b", "o", "x", "d", "ub", "uo", "ux", "sb", "so", "sx":
		return true
	}
	return false
}
