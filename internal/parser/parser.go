package parser

import (
	"fmt"
	"slices"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/token"
)

// DefaultMaxNesting bounds recursion over nested block and component
// configurations.
const DefaultMaxNesting = 512

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	// MaxNesting caps block configuration depth; 0 means DefaultMaxNesting.
	MaxNesting int
	Reporter   diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File *ast.DesignFile
	Bag  *diag.Bag
}

// Parser holds the state for one token stream.
type Parser struct {
	ts   *token.Stream
	pos  token.ID
	opts Options
}

func newParser(ts *token.Stream, opts Options) *Parser {
	if opts.MaxNesting <= 0 {
		opts.MaxNesting = DefaultMaxNesting
	}
	return &Parser{ts: ts, opts: opts}
}

// ParseFile parses a design file made of context clauses and configuration
// declarations.
func ParseFile(ts *token.Stream, opts Options) Result {
	p := newParser(ts, opts)
	file := p.parseDesignFile()
	return Result{File: file, Bag: bagOf(opts.Reporter)}
}

// ParseConfigurationSpecification parses a single stand-alone configuration
// specification such as `for all : comp use entity work.e;`.
func ParseConfigurationSpecification(ts *token.Stream, opts Options) (*ast.ConfigurationSpecification, bool) {
	p := newParser(ts, opts)
	spec, ok := p.parseConfigurationSpecification()
	if !ok {
		return nil, false
	}
	if !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken, "unexpected "+p.describe()+" after configuration specification")
		return nil, false
	}
	return spec, true
}

func bagOf(r diag.Reporter) *diag.Bag {
	if br, ok := r.(*diag.BagReporter); ok {
		return br.Bag
	}
	return nil
}

func (p *Parser) parseDesignFile() *ast.DesignFile {
	file := &ast.DesignFile{EOF: p.ts.EOF()}
	for !p.at(token.EOF) && !p.opts.Enough() {
		ctx, ok := p.parseContextClause()
		if !ok {
			p.resyncUnit()
			continue
		}
		switch {
		case p.at(token.KwConfiguration):
			cfg, ok := p.parseConfiguration(ctx)
			if !ok {
				p.resyncUnit()
				continue
			}
			file.Units = append(file.Units, cfg)
		case p.at(token.EOF):
			if len(ctx) > 0 {
				p.err(diag.SynUnexpectedToken, "context clause is not followed by a design unit")
			}
		default:
			p.err(diag.SynUnsupportedUnit,
				fmt.Sprintf("unsupported design unit starting with %s; only configuration declarations can be formatted", p.describe()))
			p.resyncUnit()
		}
	}
	return file
}

// resyncUnit skips at least one token and stops before the next unit
// keyword or configuration header that follows a `;`.
func (p *Parser) resyncUnit() {
	p.advance()
	for !p.at(token.EOF) {
		if p.prevKind() == token.Semicolon {
			if p.atOr(token.KwLibrary, token.KwEntity, token.KwArchitecture, token.KwPackage) {
				return
			}
			if p.at(token.KwConfiguration) && p.peek(1) == token.Ident && p.peek(2) == token.KwOf {
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.kind() == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.kind())
}

func (p *Parser) kind() token.Kind {
	return p.ts.Kind(p.pos)
}

// peek returns the kind n tokens ahead, saturating at EOF.
func (p *Parser) peek(n int) token.Kind {
	id := int(p.pos) + n
	if id >= p.ts.Len() {
		return token.EOF
	}
	return p.ts.Kind(token.ID(id))
}

func (p *Parser) prevKind() token.Kind {
	if p.pos == 0 {
		return token.Invalid
	}
	return p.ts.Kind(p.pos - 1)
}
