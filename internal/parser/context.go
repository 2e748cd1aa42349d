package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// parseContextClause parses library clauses, use clauses and context
// references preceding a design unit. A `context x is` declaration ends the
// clause so the caller can report it as an unsupported unit.
func (p *Parser) parseContextClause() ([]ast.ContextItem, bool) {
	var items []ast.ContextItem
	for {
		switch {
		case p.at(token.KwLibrary):
			c, ok := p.parseLibraryClause()
			if !ok {
				return items, false
			}
			items = append(items, c)
		case p.at(token.KwUse):
			c, ok := p.parseUseClause()
			if !ok {
				return items, false
			}
			items = append(items, c)
		case p.at(token.KwContext) && p.peek(2) != token.KwIs:
			c, ok := p.parseContextReference()
			if !ok {
				return items, false
			}
			items = append(items, c)
		default:
			return items, true
		}
	}
}

func (p *Parser) parseLibraryClause() (*ast.LibraryClause, bool) {
	c := &ast.LibraryClause{}
	start := p.advance()
	for {
		id, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected library name")
		if !ok {
			return nil, false
		}
		c.Names = append(c.Names, ast.Ident{Token: id})
		if !p.at(token.Comma) {
			break
		}
		c.Commas = append(c.Commas, p.advance())
	}
	semi, ok := p.expectSemi("library clause")
	if !ok {
		return nil, false
	}
	c.Span = token.NewSpan(start, semi)
	return c, true
}

func (p *Parser) parseUseClause() (*ast.UseClause, bool) {
	c := &ast.UseClause{}
	start := p.advance()
	names, commas, ok := p.parseSelectedNameList()
	if !ok {
		return nil, false
	}
	c.Names, c.Commas = names, commas
	semi, ok := p.expectSemi("use clause")
	if !ok {
		return nil, false
	}
	c.Span = token.NewSpan(start, semi)
	return c, true
}

func (p *Parser) parseContextReference() (*ast.ContextReference, bool) {
	c := &ast.ContextReference{}
	start := p.advance()
	names, commas, ok := p.parseSelectedNameList()
	if !ok {
		return nil, false
	}
	c.Names, c.Commas = names, commas
	semi, ok := p.expectSemi("context reference")
	if !ok {
		return nil, false
	}
	c.Span = token.NewSpan(start, semi)
	return c, true
}

func (p *Parser) parseSelectedNameList() ([]ast.Name, []token.ID, bool) {
	var (
		names  []ast.Name
		commas []token.ID
	)
	for {
		name, ok := p.parseSelectedName()
		if !ok {
			return nil, nil, false
		}
		names = append(names, name)
		if !p.at(token.Comma) {
			return names, commas, true
		}
		commas = append(commas, p.advance())
	}
}
