package format

import (
	"bytes"

	"vhdlfmt/internal/token"
)

// Buffer accumulates formatted output. Text only enters it through
// CopyToken; everything else it writes is whitespace.
type Buffer struct {
	ts          *token.Stream
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
	// pendingNewline is set after a trailing `--` comment so the next text
	// starts on a fresh line.
	pendingNewline bool
}

// NewBuffer creates a buffer copying tokens from ts.
func NewBuffer(ts *token.Stream, opt Options) *Buffer {
	size := 0
	if ts != nil && ts.File != nil {
		size = len(ts.File.Content)
	}
	return &Buffer{
		ts:          ts,
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, size+size/8),
		atLineStart: true,
	}
}

// Bytes returns the output terminated by exactly one newline, or nothing when
// no token was written.
func (b *Buffer) Bytes() []byte {
	out := bytes.TrimRight(b.buf, " \t\r\n")
	if len(out) == 0 {
		return []byte{}
	}
	res := make([]byte, len(out), len(out)+1)
	copy(res, out)
	return append(res, '\n')
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Level returns the current indentation level.
func (b *Buffer) Level() int { return b.indentLevel }

// Indent increases the indentation level until the returned func is called.
func (b *Buffer) Indent() (release func()) {
	b.indentLevel++
	level := b.indentLevel
	return func() {
		if b.indentLevel == level {
			b.indentLevel--
		}
	}
}

// Indented runs fn one indentation level deeper. The level is restored even
// when fn panics.
func (b *Buffer) Indented(fn func()) {
	defer b.Indent()()
	fn()
}

// Space writes one space unless the line is empty or already ends in one.
func (b *Buffer) Space() {
	if len(b.buf) == 0 || b.atLineStart || b.pendingNewline {
		return
	}
	if last := b.buf[len(b.buf)-1]; last == ' ' || last == '\t' || last == '\n' {
		return
	}
	b.buf = append(b.buf, ' ')
}

// LineBreak ends the current line. Indentation for the next line is written
// lazily with the next token.
func (b *Buffer) LineBreak() {
	if len(b.buf) == 0 {
		b.pendingNewline = false
		return
	}
	b.newline()
}

// LineBreakPreserve ends the current line and keeps one empty line when the
// source had at least one between token after and its successor.
func (b *Buffer) LineBreakPreserve(after token.ID) {
	b.LineBreak()
	next, ok := b.ts.Get(after + 1)
	if ok && next.BlankBefore() {
		b.blankLine()
	}
}

// CopyToken writes token id with its comments: leading comments each on
// their own line, then the token text, then trailing comments after a space.
func (b *Buffer) CopyToken(id token.ID) {
	tok, ok := b.ts.Get(id)
	if !ok {
		fail(ErrTokenContract, id, "token id out of range (stream has %d tokens)", b.ts.Len())
	}
	for _, c := range tok.Leading {
		if !b.atLineStart {
			b.newline()
		}
		if c.BlankBefore {
			b.blankLine()
		}
		b.write(c.Text)
		b.newline()
	}
	if len(tok.Leading) > 0 && tok.NewlinesBefore >= 2 && tok.Kind != token.EOF {
		b.blankLine()
	}
	if tok.Text != "" {
		b.write(tok.Text)
	}
	for _, c := range tok.Trailing {
		b.buf = append(b.buf, ' ')
		b.buf = append(b.buf, c.Text...)
		if c.Kind == token.TriviaLineComment {
			b.pendingNewline = true
		}
	}
}

func (b *Buffer) write(s string) {
	if b.pendingNewline {
		b.newline()
	}
	b.writeIndent()
	b.buf = append(b.buf, s...)
	b.atLineStart = false
}

func (b *Buffer) writeIndent() {
	if !b.atLineStart {
		return
	}
	if b.opt.UseTabs {
		for range b.indentLevel {
			b.buf = append(b.buf, '\t')
		}
	} else {
		for range b.indentLevel * b.opt.IndentWidth {
			b.buf = append(b.buf, ' ')
		}
	}
	b.atLineStart = false
}

func (b *Buffer) newline() {
	b.buf = bytes.TrimRight(b.buf, " \t")
	b.buf = append(b.buf, '\n')
	b.atLineStart = true
	b.pendingNewline = false
}

// blankLine makes the output end with one empty line, never more.
func (b *Buffer) blankLine() {
	if len(b.buf) == 0 {
		return
	}
	if !b.atLineStart || b.pendingNewline {
		b.newline()
	}
	if bytes.HasSuffix(b.buf, []byte("\n\n")) {
		return
	}
	b.buf = append(b.buf, '\n')
}
