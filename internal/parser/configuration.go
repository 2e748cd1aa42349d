package parser

import (
	"strconv"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// parseConfiguration parses
//
//	configuration ident of entity_name is
//	    {declarative item} {vunit binding}
//	    block_configuration
//	end [configuration] [ident];
func (p *Parser) parseConfiguration(ctx []ast.ContextItem) (*ast.ConfigurationDeclaration, bool) {
	cfg := &ast.ConfigurationDeclaration{
		Context:    ctx,
		EndKeyword: token.NoID,
		EndIdent:   token.NoID,
	}
	start := p.advance()

	var ok bool
	var id token.ID
	if id, ok = p.expect(token.Ident, diag.SynExpectIdentifier, "expected configuration name"); !ok {
		return nil, false
	}
	cfg.Ident = ast.Ident{Token: id}
	if cfg.OfToken, ok = p.expect(token.KwOf, diag.SynExpectKeyword, "expected 'of'"); !ok {
		return nil, false
	}
	if cfg.EntityName, ok = p.parseSelectedName(); !ok {
		return nil, false
	}
	if cfg.IsToken, ok = p.expect(token.KwIs, diag.SynExpectKeyword, "expected 'is'"); !ok {
		return nil, false
	}

	if cfg.Decls, ok = p.parseConfigurationDecls(); !ok {
		return nil, false
	}
	for p.at(token.KwUse) && p.peek(1) == token.KwVunit {
		vu, ok := p.parseVUnitBinding()
		if !ok {
			return nil, false
		}
		cfg.VUnitBindings = append(cfg.VUnitBindings, vu)
	}

	if !p.at(token.KwFor) {
		p.err(diag.SynExpectKeyword, "expected block configuration starting with 'for', got "+p.describe())
		return nil, false
	}
	if cfg.Block, ok = p.parseBlockConfiguration(1); !ok {
		return nil, false
	}

	if cfg.EndToken, ok = p.expect(token.KwEnd, diag.SynExpectKeyword, "expected 'end' to close configuration"); !ok {
		return nil, false
	}
	if p.at(token.KwConfiguration) {
		cfg.EndKeyword = p.advance()
	}
	if p.at(token.Ident) {
		cfg.EndIdent = p.advance()
		p.checkEndName(cfg.Ident.Token, cfg.EndIdent)
	}
	semi, ok := p.expectSemi("configuration declaration")
	if !ok {
		return nil, false
	}
	cfg.Span = token.NewSpan(start, semi)
	return cfg, true
}

func (p *Parser) checkEndName(open, closing token.ID) {
	want, _ := p.ts.Get(open)
	got, _ := p.ts.Get(closing)
	if token.Fold(want.Text) != token.Fold(got.Text) {
		p.warnAt(closing, diag.SynMismatchedEndName,
			"end label "+strconv.Quote(got.Text)+" does not match "+strconv.Quote(want.Text))
	}
}

// parseConfigurationDecls parses use clauses, attribute specifications and
// group declarations. `use vunit` ends the declarative part.
func (p *Parser) parseConfigurationDecls() ([]ast.Declaration, bool) {
	var decls []ast.Declaration
	for {
		switch {
		case p.at(token.KwUse) && p.peek(1) != token.KwVunit:
			c, ok := p.parseUseClause()
			if !ok {
				return nil, false
			}
			decls = append(decls, c)
		case p.at(token.KwAttribute):
			sp, ok := p.skipToSemicolon("attribute specification")
			if !ok {
				return nil, false
			}
			decls = append(decls, &ast.AttributeSpecification{Span: sp})
		case p.at(token.KwGroup):
			sp, ok := p.skipToSemicolon("group declaration")
			if !ok {
				return nil, false
			}
			decls = append(decls, &ast.GroupDeclaration{Span: sp})
		default:
			return decls, true
		}
	}
}

// parseVUnitBinding parses `use vunit name {, name};`.
func (p *Parser) parseVUnitBinding() (*ast.VUnitBindingIndication, bool) {
	vu := &ast.VUnitBindingIndication{}
	start := p.advance()
	vu.VUnitToken = p.advance()
	for {
		name, ok := p.parseSelectedName()
		if !ok {
			return nil, false
		}
		vu.Names = append(vu.Names, name)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	semi, ok := p.expectSemi("verification unit binding")
	if !ok {
		return nil, false
	}
	vu.Span = token.NewSpan(start, semi)
	return vu, true
}

func (p *Parser) checkDepth(depth int) bool {
	if depth > p.opts.MaxNesting {
		p.err(diag.SynNestingTooDeep,
			"block configurations nested deeper than "+strconv.Itoa(p.opts.MaxNesting)+" levels")
		return false
	}
	return true
}

// parseBlockConfiguration parses `for block_spec {use clause} {item} end for;`.
func (p *Parser) parseBlockConfiguration(depth int) (*ast.BlockConfiguration, bool) {
	if !p.checkDepth(depth) {
		return nil, false
	}
	blk := &ast.BlockConfiguration{}
	start := p.advance()

	var ok bool
	if blk.BlockSpec, ok = p.parseName(); !ok {
		return nil, false
	}
	for p.at(token.KwUse) {
		c, ok := p.parseUseClause()
		if !ok {
			return nil, false
		}
		blk.UseClauses = append(blk.UseClauses, c)
	}
	for p.at(token.KwFor) {
		var item ast.ConfigurationItem
		if p.atComponentSpecification() {
			item, ok = p.parseComponentConfiguration(depth + 1)
		} else {
			item, ok = p.parseBlockConfiguration(depth + 1)
		}
		if !ok {
			return nil, false
		}
		blk.Items = append(blk.Items, item)
	}

	if blk.EndToken, blk.EndForToken, ok = p.parseEndFor("block configuration"); !ok {
		return nil, false
	}
	blk.Span = token.NewSpan(start, p.pos-1)
	return blk, true
}

// parseEndFor parses `end for;` and leaves the `;` as the previous token.
func (p *Parser) parseEndFor(what string) (end, forTok token.ID, ok bool) {
	if end, ok = p.expect(token.KwEnd, diag.SynExpectKeyword, "expected 'end for' to close "+what); !ok {
		return token.NoID, token.NoID, false
	}
	if forTok, ok = p.expect(token.KwFor, diag.SynExpectKeyword, "expected 'for' after 'end'"); !ok {
		return token.NoID, token.NoID, false
	}
	if _, ok = p.expectSemi("'end for'"); !ok {
		return token.NoID, token.NoID, false
	}
	return end, forTok, true
}

// atComponentSpecification reports whether the `for` under the cursor opens a
// component configuration rather than a nested block configuration.
func (p *Parser) atComponentSpecification() bool {
	switch p.peek(1) {
	case token.KwAll, token.KwOthers:
		return true
	case token.Ident:
		next := p.peek(2)
		return next == token.Comma || next == token.Colon
	}
	return false
}

// parseComponentConfiguration parses
//
//	for component_specification
//	    [binding_indication;] {vunit binding} [block_configuration]
//	end for;
func (p *Parser) parseComponentConfiguration(depth int) (*ast.ComponentConfiguration, bool) {
	if !p.checkDepth(depth) {
		return nil, false
	}
	cc := &ast.ComponentConfiguration{}
	var ok bool
	if cc.Spec, ok = p.parseComponentSpecification(); !ok {
		return nil, false
	}
	if p.atBindingIndication() {
		if cc.Binding, ok = p.parseBindingIndication(); !ok {
			return nil, false
		}
	}
	for p.at(token.KwUse) && p.peek(1) == token.KwVunit {
		vu, ok := p.parseVUnitBinding()
		if !ok {
			return nil, false
		}
		cc.VUnitBindings = append(cc.VUnitBindings, vu)
	}
	if p.at(token.KwFor) {
		if cc.Block, ok = p.parseBlockConfiguration(depth + 1); !ok {
			return nil, false
		}
	}
	if cc.EndToken, cc.EndForToken, ok = p.parseEndFor("component configuration"); !ok {
		return nil, false
	}
	cc.Span = token.NewSpan(cc.Spec.Span.Start, p.pos-1)
	return cc, true
}

// parseConfigurationSpecification parses
//
//	for component_specification binding_indication; {vunit binding} [end for;]
func (p *Parser) parseConfigurationSpecification() (*ast.ConfigurationSpecification, bool) {
	cs := &ast.ConfigurationSpecification{EndToken: token.NoID, EndForToken: token.NoID}
	if !p.at(token.KwFor) {
		p.err(diag.SynExpectKeyword, "expected 'for', got "+p.describe())
		return nil, false
	}
	var ok bool
	if cs.Spec, ok = p.parseComponentSpecification(); !ok {
		return nil, false
	}
	if !p.atBindingIndication() {
		p.err(diag.SynExpectKeyword, "expected binding indication, got "+p.describe())
		return nil, false
	}
	if cs.Binding, ok = p.parseBindingIndication(); !ok {
		return nil, false
	}
	for p.at(token.KwUse) && p.peek(1) == token.KwVunit {
		vu, ok := p.parseVUnitBinding()
		if !ok {
			return nil, false
		}
		cs.VUnitBindings = append(cs.VUnitBindings, vu)
	}
	if p.at(token.KwEnd) {
		if cs.EndToken, cs.EndForToken, ok = p.parseEndFor("configuration specification"); !ok {
			return nil, false
		}
	}
	cs.Span = token.NewSpan(cs.Spec.Span.Start, p.pos-1)
	return cs, true
}
