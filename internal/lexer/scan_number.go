package lexer

import (
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// scanNumber handles decimal literals (1_000, 2.5E-3), based literals
// (16#FF#, 2#1.1#E4) and sized bit strings (12UX"F").
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.scanDigits(isDec)

	switch b := lx.cursor.Peek(); {
	case b == '#' || b == ':' && isExtendedDigit(lx.cursor.PeekAt(1)):
		return lx.scanBased(start, b)
	case isLetterByte(b):
		if tok, ok := lx.tryBitString(start); ok {
			return tok
		}
	}

	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.scanDigits(isDec)
	}
	lx.scanExponent()
	return lx.emit(token.AbstractLit, start)
}

func (lx *Lexer) scanBased(start Mark, delim byte) token.Token {
	lx.cursor.Bump()
	lx.scanDigits(isExtendedDigit)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.scanDigits(isExtendedDigit)
	}
	if !lx.cursor.Eat(delim) {
		tok := lx.emit(token.AbstractLit, start)
		lx.errLex(diag.LexBadNumber, tok.Span, "based literal is missing its closing '"+string(delim)+"'")
		return tok
	}
	lx.scanExponent()
	return lx.emit(token.AbstractLit, start)
}

func (lx *Lexer) tryBitString(start Mark) (token.Token, bool) {
	mark := lx.cursor.Mark()
	for isLetterByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '"' && isBaseSpecifier(lx.text(mark)) {
		return lx.scanString(start, token.BitStringLit), true
	}
	lx.cursor.Reset(mark)
	return token.Token{}, false
}

func (lx *Lexer) scanExponent() {
	if b := lx.cursor.Peek(); b != 'e' && b != 'E' {
		return
	}
	mark := lx.cursor.Mark()
	lx.cursor.Bump()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		// "2 e" is not an exponent; leave the letter for the next token
		lx.cursor.Reset(mark)
		return
	}
	lx.scanDigits(isDec)
}

func (lx *Lexer) scanDigits(accept func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if accept(b) || (b == '_' && accept(lx.cursor.PeekAt(1))) {
			lx.cursor.Bump()
			continue
		}
		return
	}
}
