package parser

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// parseComponentSpecification parses `for (labels | others | all) : name`.
func (p *Parser) parseComponentSpecification() (*ast.ComponentSpecification, bool) {
	spec := &ast.ComponentSpecification{}
	start := p.advance()
	switch p.kind() {
	case token.KwAll:
		spec.Instantiation = &ast.InstantiationAll{Token: p.advance()}
	case token.KwOthers:
		spec.Instantiation = &ast.InstantiationOthers{Token: p.advance()}
	case token.Ident:
		labels := &ast.InstantiationLabels{}
		for {
			id, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected instantiation label")
			if !ok {
				return nil, false
			}
			labels.Labels = append(labels.Labels, ast.Ident{Token: id})
			if !p.at(token.Comma) {
				break
			}
			labels.Commas = append(labels.Commas, p.advance())
		}
		spec.Instantiation = labels
	default:
		p.err(diag.SynExpectIdentifier, "expected instantiation label, 'others' or 'all', got "+p.describe())
		return nil, false
	}

	var ok bool
	if spec.ColonToken, ok = p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after instantiation list"); !ok {
		return nil, false
	}
	if spec.ComponentName, ok = p.parseSelectedName(); !ok {
		return nil, false
	}
	spec.Span = token.NewSpan(start, spec.ComponentName.Span.End)
	return spec, true
}

func (p *Parser) atBindingIndication() bool {
	switch p.kind() {
	case token.KwUse:
		return p.peek(1) != token.KwVunit
	case token.KwGeneric, token.KwPort:
		return true
	}
	return false
}

// parseBindingIndication parses
//
//	[use entity_aspect] [generic map (...)] [port map (...)];
func (p *Parser) parseBindingIndication() (*ast.BindingIndication, bool) {
	b := &ast.BindingIndication{UseToken: token.NoID}
	start := p.pos
	var ok bool
	if p.at(token.KwUse) {
		b.UseToken = p.advance()
		if b.Aspect, ok = p.parseEntityAspect(); !ok {
			return nil, false
		}
	}
	if p.at(token.KwGeneric) {
		if b.GenericMap, ok = p.parseMapAspect(); !ok {
			return nil, false
		}
	}
	if p.at(token.KwPort) {
		if b.PortMap, ok = p.parseMapAspect(); !ok {
			return nil, false
		}
	}
	semi, ok := p.expectSemi("binding indication")
	if !ok {
		return nil, false
	}
	b.Span = token.NewSpan(start, semi)
	return b, true
}

func (p *Parser) parseEntityAspect() (ast.EntityAspect, bool) {
	switch p.kind() {
	case token.KwEntity:
		a := &ast.EntityAspectEntity{
			Keyword:     p.advance(),
			LParenToken: token.NoID,
			Arch:        token.NoID,
			RParenToken: token.NoID,
		}
		var ok bool
		if a.Name, ok = p.parseSelectedName(); !ok {
			return nil, false
		}
		if p.at(token.LParen) {
			a.LParenToken = p.advance()
			if a.Arch, ok = p.expect(token.Ident, diag.SynExpectIdentifier, "expected architecture name"); !ok {
				return nil, false
			}
			if a.RParenToken, ok = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after architecture name"); !ok {
				return nil, false
			}
		}
		return a, true
	case token.KwConfiguration:
		a := &ast.EntityAspectConfiguration{Keyword: p.advance()}
		var ok bool
		if a.Name, ok = p.parseSelectedName(); !ok {
			return nil, false
		}
		return a, true
	case token.KwOpen:
		return &ast.EntityAspectOpen{Keyword: p.advance()}, true
	}
	p.err(diag.SynExpectEntityAspect, "expected 'entity', 'configuration' or 'open' after 'use', got "+p.describe())
	return nil, false
}

// parseMapAspect parses `generic map (...)` or `port map (...)`.
func (p *Parser) parseMapAspect() (*ast.MapAspect, bool) {
	m := &ast.MapAspect{}
	start := p.advance()
	var ok bool
	if m.MapToken, ok = p.expect(token.KwMap, diag.SynExpectKeyword, "expected 'map'"); !ok {
		return nil, false
	}
	if m.List, ok = p.parseAssociationList(); !ok {
		return nil, false
	}
	m.Span = token.NewSpan(start, m.List.RParenToken)
	return m, true
}

func (p *Parser) parseAssociationList() (ast.AssociationList, bool) {
	var list ast.AssociationList
	var ok bool
	if list.LParenToken, ok = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to open association list"); !ok {
		return list, false
	}
	if p.at(token.RParen) {
		p.err(diag.SynEmptyList, "association list must not be empty")
		return list, false
	}
	for {
		el, ok := p.parseAssociationElement()
		if !ok {
			return list, false
		}
		list.Elements = append(list.Elements, el)
		if !p.at(token.Comma) {
			break
		}
		list.Commas = append(list.Commas, p.advance())
	}
	if list.RParenToken, ok = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close association list"); !ok {
		return list, false
	}
	return list, true
}

func (p *Parser) parseAssociationElement() (ast.AssociationElement, bool) {
	el := ast.AssociationElement{ArrowToken: token.NoID}
	first, ok := p.parseExpr("association element")
	if !ok {
		return el, false
	}
	if !p.at(token.Arrow) {
		el.Actual = first
		return el, true
	}
	el.Formal = &first
	el.ArrowToken = p.advance()
	if el.Actual, ok = p.parseExpr("actual after '=>'"); !ok {
		return el, false
	}
	return el, true
}
