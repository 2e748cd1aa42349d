package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/token"
)

func (p *printer) printComponentSpecification(spec *ast.ComponentSpecification) {
	if spec == nil {
		fail(ErrUnsupportedConstruct, token.NoID, "missing component specification")
	}
	p.copy(spec.ForToken(), token.KwFor)
	p.buf.Space()
	switch inst := spec.Instantiation.(type) {
	case *ast.InstantiationLabels:
		p.printIdentList(inst.Labels, inst.Commas)
	case *ast.InstantiationOthers:
		p.copy(inst.Token, token.KwOthers)
	case *ast.InstantiationAll:
		p.copy(inst.Token, token.KwAll)
	default:
		fail(ErrUnsupportedConstruct, spec.ForToken(), "unknown instantiation list %T", inst)
	}
	p.copy(spec.ColonToken, token.Colon)
	p.buf.Space()
	p.printName(spec.ComponentName)
}

// printIdentList writes `a, b, c`.
func (p *printer) printIdentList(idents []ast.Ident, commas []token.ID) {
	for i, id := range idents {
		p.copy(id.Token, token.Ident)
		if i < len(commas) {
			p.copy(commas[i], token.Comma)
			p.buf.Space()
		}
	}
}

func (p *printer) printBindingIndication(b *ast.BindingIndication) {
	if b == nil {
		fail(ErrUnsupportedConstruct, token.NoID, "missing binding indication")
	}
	first := true
	if b.UseToken.IsValid() {
		first = false
		p.copy(b.UseToken, token.KwUse)
		if b.Aspect != nil {
			p.buf.Space()
			p.printEntityAspect(b.Aspect)
		}
	}
	for _, m := range []*ast.MapAspect{b.GenericMap, b.PortMap} {
		if m == nil {
			continue
		}
		if first {
			first = false
			p.printMapAspect(m)
			continue
		}
		p.buf.Indented(func() {
			p.buf.LineBreak()
			p.printMapAspect(m)
		})
	}
	p.copy(b.SemiToken(), token.Semicolon)
}

func (p *printer) printEntityAspect(aspect ast.EntityAspect) {
	switch a := aspect.(type) {
	case *ast.EntityAspectEntity:
		p.copy(a.Keyword, token.KwEntity)
		p.buf.Space()
		p.printName(a.Name)
		if a.HasArchitecture() {
			p.copy(a.LParenToken, token.LParen)
			p.copy(a.Arch, token.Ident)
			p.copy(a.RParenToken, token.RParen)
		}
	case *ast.EntityAspectConfiguration:
		p.copy(a.Keyword, token.KwConfiguration)
		p.buf.Space()
		p.printName(a.Name)
	case *ast.EntityAspectOpen:
		p.copy(a.Keyword, token.KwOpen)
	default:
		fail(ErrUnsupportedConstruct, token.NoID, "unknown entity aspect %T", aspect)
	}
}

// printMapAspect writes one association per line:
//
//	port map (
//	    a => b,
//	    c => d
//	)
func (p *printer) printMapAspect(m *ast.MapAspect) {
	p.copy(m.KindToken(), token.KwGeneric, token.KwPort)
	p.buf.Space()
	p.copy(m.MapToken, token.KwMap)
	p.buf.Space()
	p.copy(m.List.LParenToken, token.LParen)
	p.buf.Indented(func() {
		for i, el := range m.List.Elements {
			p.buf.LineBreak()
			if el.Formal != nil {
				p.printTokenRun(el.Formal.Span)
				p.buf.Space()
				p.copy(el.ArrowToken, token.Arrow)
				p.buf.Space()
			}
			p.printTokenRun(el.Actual.Span)
			if i < len(m.List.Commas) {
				p.copy(m.List.Commas[i], token.Comma)
			}
		}
	})
	p.buf.LineBreak()
	p.copy(m.List.RParenToken, token.RParen)
}

// printVUnitBindingIndication writes `use vunit a, b;`. Commas are taken
// from the token following each name.
func (p *printer) printVUnitBindingIndication(vu *ast.VUnitBindingIndication) {
	p.copy(vu.UseToken(), token.KwUse)
	p.buf.Space()
	p.copy(vu.VUnitToken, token.KwVunit)
	p.buf.Space()
	for _, name := range vu.Names {
		p.printName(name)
		next := name.Span.End + 1
		if tok, ok := p.ts.Get(next); ok && tok.Kind == token.Comma {
			p.copy(next, token.Comma)
			p.buf.Space()
		}
	}
	p.copy(vu.Span.End, token.Semicolon)
}

func (p *printer) printConfigurationSpecification(cs *ast.ConfigurationSpecification) {
	p.printComponentSpecification(cs.Spec)
	p.buf.Indented(func() {
		p.buf.LineBreak()
		p.printBindingIndication(cs.Binding)
		p.printVUnitBindings(cs.VUnitBindings)
	})
	if cs.EndToken.IsValid() {
		p.printEndFor(cs.EndToken, cs.EndForToken, cs.Span.End)
	}
}
