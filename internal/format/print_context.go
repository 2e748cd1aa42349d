package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/token"
)

// printContextClause writes one context item per line, keeping at most one
// empty line between items.
func (p *printer) printContextClause(items []ast.ContextItem) {
	for i, item := range items {
		if i > 0 {
			p.buf.LineBreakPreserve(items[i-1].TokenSpan().End)
		}
		switch c := item.(type) {
		case *ast.LibraryClause:
			p.copy(c.Span.Start, token.KwLibrary)
			p.buf.Space()
			p.printIdentList(c.Names, c.Commas)
			p.copy(c.Span.End, token.Semicolon)
		case *ast.UseClause:
			p.printUseClause(c)
		case *ast.ContextReference:
			p.copy(c.Span.Start, token.KwContext)
			p.buf.Space()
			p.printNameList(c.Names, c.Commas)
			p.copy(c.Span.End, token.Semicolon)
		default:
			fail(ErrUnsupportedConstruct, item.TokenSpan().Start, "unknown context item %T", item)
		}
	}
}

func (p *printer) printUseClause(c *ast.UseClause) {
	p.copy(c.Span.Start, token.KwUse)
	p.buf.Space()
	p.printNameList(c.Names, c.Commas)
	p.copy(c.Span.End, token.Semicolon)
}

func (p *printer) printNameList(names []ast.Name, commas []token.ID) {
	for i, name := range names {
		p.printName(name)
		if i < len(commas) {
			p.copy(commas[i], token.Comma)
			p.buf.Space()
		}
	}
}

func (p *printer) printDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.UseClause:
		p.printUseClause(d)
	case *ast.AttributeSpecification:
		p.expectKind(d.Span.Start, token.KwAttribute)
		p.printTokenRun(d.Span)
	case *ast.GroupDeclaration:
		p.expectKind(d.Span.Start, token.KwGroup)
		p.printTokenRun(d.Span)
	default:
		fail(ErrUnsupportedConstruct, decl.TokenSpan().Start, "unknown declaration %T", decl)
	}
}

func (p *printer) expectKind(id token.ID, want token.Kind) {
	if got := p.ts.Kind(id); got != want {
		fail(ErrTokenContract, id, "found %s, want %s", got, want)
	}
}

func (p *printer) printName(n ast.Name) {
	p.printTokenRun(n.Span)
}

// printTokenRun writes the tokens of sp with canonical spacing.
func (p *printer) printTokenRun(sp token.Span) {
	if sp.Len() == 0 {
		fail(ErrTokenContract, sp.Start, "empty token span [%d, %d]", sp.Start, sp.End)
	}
	prevPrev, prev := token.Invalid, token.Invalid
	for id := sp.Start; id <= sp.End; id++ {
		k := p.ts.Kind(id)
		if id > sp.Start && spaceBetween(prevPrev, prev, k) {
			p.buf.Space()
		}
		p.copy(id)
		prevPrev, prev = prev, k
	}
}

// spaceBetween reports whether a space separates a token of kind prev from
// one of kind cur; prevPrev is the kind before prev or Invalid.
func spaceBetween(prevPrev, prev, cur token.Kind) bool {
	switch cur {
	case token.Dot, token.Tick, token.Comma, token.Semicolon, token.RParen, token.RBracket:
		return false
	}
	switch prev {
	case token.Dot, token.Tick, token.LParen, token.LBracket:
		return false
	case token.Plus, token.Minus:
		if isUnaryContext(prevPrev) && !cur.IsDelimiter() {
			return false
		}
	}
	if cur == token.LParen || cur == token.LBracket {
		switch prev {
		case token.Ident, token.RParen, token.StringLit, token.KwAll:
			return false
		}
	}
	return true
}

// isUnaryContext reports whether a sign following a token of kind k is a
// unary operator.
func isUnaryContext(k token.Kind) bool {
	switch k {
	case token.Ident, token.RParen, token.RBracket, token.KwAll, token.KwNull:
		return false
	}
	return !k.IsLiteral()
}
