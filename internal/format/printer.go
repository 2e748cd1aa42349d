package format

import (
	"errors"
	"slices"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/token"
)

// DefaultMaxDepth bounds recursion over nested configurations.
const DefaultMaxDepth = 512

type Options struct {
	IndentWidth int
	UseTabs     bool
	// MaxDepth caps block/component configuration nesting.
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

type printer struct {
	ts    *token.Stream
	buf   *Buffer
	opt   Options
	depth int
}

// run prints with fn into a fresh buffer. Internal errors raised by fn are
// returned instead of partial output.
func run(ts *token.Stream, opt Options, fn func(p *printer)) (out []byte, err error) {
	if ts == nil {
		return nil, errors.New("format: nil token stream")
	}
	opt = opt.withDefaults()
	p := &printer{ts: ts, buf: NewBuffer(ts, opt), opt: opt}
	defer recoverInternal(&err)
	fn(p)
	return p.buf.Bytes(), nil
}

// FormatFile formats every configuration declaration of file together with
// its context clause and the comments at the end of the file.
func FormatFile(ts *token.Stream, file *ast.DesignFile, opt Options) ([]byte, error) {
	if file == nil {
		return nil, errors.New("format: nil design file")
	}
	return run(ts, opt, func(p *printer) { p.printFile(file) })
}

// Configuration formats a single configuration declaration.
func Configuration(ts *token.Stream, cfg *ast.ConfigurationDeclaration, opt Options) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("format: nil configuration")
	}
	return run(ts, opt, func(p *printer) { p.printConfiguration(cfg) })
}

// BlockConfiguration formats a `for ... end for;` block region.
func BlockConfiguration(ts *token.Stream, blk *ast.BlockConfiguration, opt Options) ([]byte, error) {
	if blk == nil {
		return nil, errors.New("format: nil block configuration")
	}
	return run(ts, opt, func(p *printer) { p.printBlockConfiguration(blk) })
}

func ComponentConfiguration(ts *token.Stream, cc *ast.ComponentConfiguration, opt Options) ([]byte, error) {
	if cc == nil {
		return nil, errors.New("format: nil component configuration")
	}
	return run(ts, opt, func(p *printer) { p.printComponentConfiguration(cc) })
}

func BindingIndication(ts *token.Stream, b *ast.BindingIndication, opt Options) ([]byte, error) {
	if b == nil {
		return nil, errors.New("format: nil binding indication")
	}
	return run(ts, opt, func(p *printer) { p.printBindingIndication(b) })
}

func ConfigurationSpecification(ts *token.Stream, cs *ast.ConfigurationSpecification, opt Options) ([]byte, error) {
	if cs == nil {
		return nil, errors.New("format: nil configuration specification")
	}
	return run(ts, opt, func(p *printer) { p.printConfigurationSpecification(cs) })
}

func ComponentSpecification(ts *token.Stream, spec *ast.ComponentSpecification, opt Options) ([]byte, error) {
	if spec == nil {
		return nil, errors.New("format: nil component specification")
	}
	return run(ts, opt, func(p *printer) { p.printComponentSpecification(spec) })
}

func VUnitBindingIndication(ts *token.Stream, vu *ast.VUnitBindingIndication, opt Options) ([]byte, error) {
	if vu == nil {
		return nil, errors.New("format: nil vunit binding indication")
	}
	return run(ts, opt, func(p *printer) { p.printVUnitBindingIndication(vu) })
}

// copy writes token id after checking that it has one of kinds.
func (p *printer) copy(id token.ID, kinds ...token.Kind) {
	k := p.ts.Kind(id)
	if k == token.Invalid && int(id) >= p.ts.Len() {
		fail(ErrTokenContract, id, "token id out of range (stream has %d tokens)", p.ts.Len())
	}
	if len(kinds) > 0 && !slices.Contains(kinds, k) {
		fail(ErrTokenContract, id, "found %s, want %v", k, kinds)
	}
	p.buf.CopyToken(id)
}

// enter tracks recursion depth; the returned func leaves the level.
func (p *printer) enter(id token.ID) func() {
	p.depth++
	if p.depth > p.opt.MaxDepth {
		fail(ErrNestingTooDeep, id, "more than %d nested configurations", p.opt.MaxDepth)
	}
	return func() { p.depth-- }
}

func (p *printer) printFile(file *ast.DesignFile) {
	last := token.NoID
	for i, unit := range file.Units {
		if i > 0 {
			p.buf.LineBreak()
			p.buf.LineBreak()
		}
		p.printConfiguration(unit)
		last = unit.Span.End
	}
	eof, ok := p.ts.Get(file.EOF)
	if !ok || eof.Kind != token.EOF {
		fail(ErrTokenContract, file.EOF, "design file does not end with EOF")
	}
	if len(eof.Leading) == 0 {
		return
	}
	if last.IsValid() {
		p.buf.LineBreakPreserve(last)
	}
	p.buf.CopyToken(file.EOF)
}
