package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/token"
)

func (p *printer) printConfiguration(cfg *ast.ConfigurationDeclaration) {
	p.printContextClause(cfg.Context)
	if n := len(cfg.Context); n > 0 {
		p.buf.LineBreakPreserve(cfg.Context[n-1].TokenSpan().End)
	}

	// configuration <name> of <entity> is
	p.copy(cfg.Span.Start, token.KwConfiguration)
	p.buf.Space()
	p.copy(cfg.Ident.Token, token.Ident)
	p.buf.Space()
	p.copy(cfg.OfToken, token.KwOf)
	p.buf.Space()
	p.printName(cfg.EntityName)
	p.buf.Space()
	p.copy(cfg.IsToken, token.KwIs)

	p.buf.Indented(func() {
		prev := token.NoID
		breakAfter := func(end token.ID) {
			if prev.IsValid() {
				p.buf.LineBreakPreserve(prev)
			} else {
				p.buf.LineBreak()
			}
			prev = end
		}
		for _, decl := range cfg.Decls {
			breakAfter(decl.TokenSpan().End)
			p.printDeclaration(decl)
		}
		for _, vu := range cfg.VUnitBindings {
			breakAfter(vu.Span.End)
			p.printVUnitBindingIndication(vu)
		}
		breakAfter(token.NoID)
		p.printBlockConfiguration(cfg.Block)
	})

	// end [configuration] [name];
	p.buf.LineBreak()
	p.copy(cfg.EndToken, token.KwEnd)
	if cfg.EndKeyword.IsValid() {
		p.buf.Space()
		p.copy(cfg.EndKeyword, token.KwConfiguration)
	}
	if cfg.EndIdent.IsValid() {
		p.buf.Space()
		p.copy(cfg.EndIdent, token.Ident)
	}
	p.copy(cfg.Span.End, token.Semicolon)
}

func (p *printer) printBlockConfiguration(blk *ast.BlockConfiguration) {
	if blk == nil {
		fail(ErrUnsupportedConstruct, token.NoID, "configuration without block configuration")
	}
	defer p.enter(blk.ForToken())()
	if len(blk.UseClauses) > 0 {
		fail(ErrUnsupportedConstruct, blk.UseClauses[0].Span.Start, "use clause inside block configuration")
	}

	p.copy(blk.ForToken(), token.KwFor)
	p.buf.Space()
	p.printName(blk.BlockSpec)
	p.buf.Indented(func() {
		for i, item := range blk.Items {
			if i == 0 {
				p.buf.LineBreak()
			} else {
				p.buf.LineBreakPreserve(blk.Items[i-1].TokenSpan().End)
			}
			switch item := item.(type) {
			case *ast.BlockConfiguration:
				p.printBlockConfiguration(item)
			case *ast.ComponentConfiguration:
				p.printComponentConfiguration(item)
			default:
				fail(ErrUnsupportedConstruct, blk.ForToken(), "unknown configuration item %T", item)
			}
		}
	})
	p.printEndFor(blk.EndToken, blk.EndForToken, blk.SemiToken())
}

func (p *printer) printComponentConfiguration(cc *ast.ComponentConfiguration) {
	defer p.enter(cc.Span.Start)()

	p.printComponentSpecification(cc.Spec)
	p.buf.Indented(func() {
		if cc.Binding != nil {
			p.buf.LineBreak()
			p.printBindingIndication(cc.Binding)
		}
		p.printVUnitBindings(cc.VUnitBindings)
		if cc.Block != nil {
			p.buf.LineBreak()
			p.printBlockConfiguration(cc.Block)
		}
	})
	p.printEndFor(cc.EndToken, cc.EndForToken, cc.SemiToken())
}

// printEndFor writes `end for;` on its own line.
func (p *printer) printEndFor(end, forTok, semi token.ID) {
	p.buf.LineBreak()
	p.copy(end, token.KwEnd)
	p.buf.Space()
	p.copy(forTok, token.KwFor)
	p.copy(semi, token.Semicolon)
}

func (p *printer) printVUnitBindings(vus []*ast.VUnitBindingIndication) {
	for _, vu := range vus {
		p.buf.LineBreak()
		p.printVUnitBindingIndication(vu)
	}
}
