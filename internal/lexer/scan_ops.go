package lexer

import (
	"vhdlfmt/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var compound = []struct {
	text string
	kind token.Kind
}{
	{"?/=", token.QueSlashEq},
	{"?<=", token.QueLtEq},
	{"?>=", token.QueGtEq},
	{"=>", token.Arrow},
	{"**", token.DoubleStar},
	{":=", token.ColonEq},
	{"/=", token.SlashEq},
	{">=", token.GtEq},
	{"<=", token.LtEq},
	{"<>", token.Box},
	{"??", token.QueQue},
	{"?=", token.QueEq},
	{"?<", token.QueLt},
	{"?>", token.QueGt},
	{"<<", token.LtLt},
	{">>", token.GtGt},
}

var single = [256]token.Kind{
	'&': token.Amp, '\'': token.Tick, '(': token.LParen, ')': token.RParen,
	'*': token.Star, '+': token.Plus, ',': token.Comma, '-': token.Minus,
	'.': token.Dot, '/': token.Slash, ':': token.Colon, ';': token.Semicolon,
	'<': token.Lt, '=': token.Eq, '>': token.Gt, '|': token.Bar,
	'[': token.LBracket, ']': token.RBracket, '?': token.Question,
	'@': token.At, '^': token.Caret, '`': token.Backquote,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]
	for _, c := range compound {
		if len(rest) >= len(c.text) && string(rest[:len(c.text)]) == c.text {
			lx.cursor.Off += uint32(len(c.text))
			return lx.emit(c.kind, start)
		}
	}
	if k := single[rest[0]]; k != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}
	return lx.scanUnknown()
}
