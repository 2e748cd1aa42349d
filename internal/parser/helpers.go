package parser

import (
	"strconv"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

// advance consumes the current token and returns its id. EOF is never
// consumed.
func (p *Parser) advance() token.ID {
	id := p.pos
	if !p.at(token.EOF) {
		p.pos++
	}
	return id
}

// expect consumes a token of kind k or reports code and returns NoID.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.ID, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg+", got "+p.describe())
	return token.NoID, false
}

// expectSemi consumes the `;` that terminates what.
func (p *Parser) expectSemi(what string) (token.ID, bool) {
	return p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after "+what)
}

// describe renders the current token for messages.
func (p *Parser) describe() string {
	tok, ok := p.ts.Get(p.pos)
	if !ok || tok.Kind == token.EOF {
		return "end of file"
	}
	if tok.Kind.IsKeyword() {
		return "keyword '" + tok.Text + "'"
	}
	return strconv.Quote(tok.Text)
}

// diagnosticSpan points at the current token, or right after the last
// consumed one when the current token is EOF.
func (p *Parser) diagnosticSpan() source.Span {
	tok, _ := p.ts.Get(p.pos)
	if tok.Kind == token.EOF && p.pos > 0 {
		prev, _ := p.ts.Get(p.pos - 1)
		return source.Span{File: prev.Span.File, Start: prev.Span.End, End: prev.Span.End}
	}
	return tok.Span
}

func (p *Parser) tokenSpan(id token.ID) source.Span {
	tok, _ := p.ts.Get(id)
	return tok.Span
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) errAt(id token.ID, code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.tokenSpan(id), msg)
}

func (p *Parser) warnAt(id token.ID, code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.tokenSpan(id), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError {
		if p.opts.Enough() {
			return false
		}
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}
