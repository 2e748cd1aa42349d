package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

func isNamePrefix(k token.Kind) bool {
	return k == token.Ident || k == token.StringLit || k == token.CharLit
}

func isSuffix(k token.Kind) bool {
	return isNamePrefix(k) || k == token.KwAll
}

// parseName parses a general name: a prefix followed by any number of
// selected, indexed/slice and attribute suffixes.
func (p *Parser) parseName() (ast.Name, bool) {
	start := p.pos
	if !isNamePrefix(p.kind()) {
		p.err(diag.SynExpectName, "expected name, got "+p.describe())
		return ast.Name{}, false
	}
	p.advance()
	for {
		switch p.kind() {
		case token.Dot:
			if !isSuffix(p.peek(1)) {
				p.advance()
				p.err(diag.SynExpectName, "expected suffix after '.', got "+p.describe())
				return ast.Name{}, false
			}
			p.advance()
			p.advance()
		case token.LParen:
			if _, ok := p.skipParens(); !ok {
				return ast.Name{}, false
			}
		case token.Tick:
			next := p.peek(1)
			if next != token.Ident && !next.IsKeyword() {
				return ast.Name{Span: token.NewSpan(start, p.pos-1)}, true
			}
			p.advance()
			p.advance()
		default:
			return ast.Name{Span: token.NewSpan(start, p.pos-1)}, true
		}
	}
}

// parseSelectedName parses `prefix{.suffix}` without index or attribute
// suffixes, so a following `(` is left to the caller.
func (p *Parser) parseSelectedName() (ast.Name, bool) {
	start := p.pos
	if !isNamePrefix(p.kind()) {
		p.err(diag.SynExpectName, "expected name, got "+p.describe())
		return ast.Name{}, false
	}
	p.advance()
	for p.at(token.Dot) {
		if !isSuffix(p.peek(1)) {
			p.advance()
			p.err(diag.SynExpectName, "expected suffix after '.', got "+p.describe())
			return ast.Name{}, false
		}
		p.advance()
		p.advance()
	}
	return ast.Name{Span: token.NewSpan(start, p.pos-1)}, true
}

// skipParens consumes a balanced parenthesized group and returns the id of
// the closing paren.
func (p *Parser) skipParens() (token.ID, bool) {
	open := p.advance()
	depth := 1
	for {
		switch p.kind() {
		case token.EOF:
			p.errAt(open, diag.SynUnclosedParen, "unclosed '('")
			return token.NoID, false
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.advance(), true
			}
		}
		p.advance()
	}
}

// parseExpr consumes a balanced token run up to a top-level `,`, `)`, `=>`
// or `;`.
func (p *Parser) parseExpr(what string) (ast.Expr, bool) {
	start := p.pos
	for {
		switch p.kind() {
		case token.EOF, token.Semicolon, token.Comma, token.RParen, token.Arrow:
			if p.pos == start {
				p.err(diag.SynUnexpectedToken, "expected "+what+", got "+p.describe())
				return ast.Expr{}, false
			}
			return ast.Expr{Span: token.NewSpan(start, p.pos-1)}, true
		case token.LParen:
			if _, ok := p.skipParens(); !ok {
				return ast.Expr{}, false
			}
		default:
			p.advance()
		}
	}
}

// skipToSemicolon consumes a declaration kept as a token run and returns its
// span through the terminating `;`.
func (p *Parser) skipToSemicolon(what string) (token.Span, bool) {
	start := p.advance()
	for {
		switch p.kind() {
		case token.EOF:
			p.err(diag.SynExpectSemicolon, "expected ';' after "+what)
			return token.Span{}, false
		case token.LParen:
			if _, ok := p.skipParens(); !ok {
				return token.Span{}, false
			}
		case token.Semicolon:
			return token.NewSpan(start, p.advance()), true
		default:
			p.advance()
		}
	}
}
