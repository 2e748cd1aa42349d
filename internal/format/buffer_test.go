package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

func newTestBuffer(t *testing.T, src string, opt Options) (*Buffer, *token.Stream) {
	t.Helper()
	fs := source.NewFileSet()
	ts := lexer.Tokenize(fs.Get(fs.AddVirtual("buf.vhd", []byte(src))), lexer.Options{})
	return NewBuffer(ts, opt), ts
}

func TestBufferSpacing(t *testing.T) {
	b, _ := newTestBuffer(t, "a b c", Options{})
	b.Space()
	b.LineBreak()
	assert.Equal(t, 0, b.Len())

	b.CopyToken(0)
	b.Space()
	b.Space()
	b.CopyToken(1)
	b.LineBreak()
	b.Space()
	b.CopyToken(2)
	assert.Equal(t, "a b\nc\n", string(b.Bytes()))
}

func TestBufferIndentation(t *testing.T) {
	b, _ := newTestBuffer(t, "a b c", Options{IndentWidth: 3})
	b.CopyToken(0)
	b.Indented(func() {
		b.LineBreak()
		b.CopyToken(1)
		release := b.Indent()
		b.LineBreak()
		b.CopyToken(2)
		release()
		release()
		assert.Equal(t, 1, b.Level())
	})
	assert.Equal(t, 0, b.Level())
	assert.Equal(t, "a\n   b\n      c\n", string(b.Bytes()))
}

func TestBufferIndentRestoredOnPanic(t *testing.T) {
	b, _ := newTestBuffer(t, "a", Options{})
	func() {
		defer func() { _ = recover() }()
		b.Indented(func() {
			b.Indented(func() { panic("boom") })
		})
	}()
	assert.Equal(t, 0, b.Level())
}

func TestBufferLineBreakPreserve(t *testing.T) {
	b, _ := newTestBuffer(t, "a\n\n\n\nb\nc", Options{})
	b.CopyToken(0)
	b.LineBreakPreserve(0)
	b.CopyToken(1)
	b.LineBreakPreserve(1)
	b.CopyToken(2)
	assert.Equal(t, "a\n\nb\nc\n", string(b.Bytes()))
}

func TestBufferComments(t *testing.T) {
	src := "-- lead\n\n-- second\na -- trail\nb /* x */ c"
	b, ts := newTestBuffer(t, src, Options{})
	require.Equal(t, 4, ts.Len())

	b.Indented(func() {
		b.CopyToken(0)
		b.Space()
		b.CopyToken(1)
		b.Space()
		b.CopyToken(2)
	})
	assert.Equal(t, "    -- lead\n\n    -- second\n    a -- trail\n    b /* x */ c\n", string(b.Bytes()))
}

func TestBufferCopyTokenOutOfRange(t *testing.T) {
	b, _ := newTestBuffer(t, "a", Options{})
	defer func() {
		r := recover()
		ie, ok := r.(*InternalError)
		require.True(t, ok)
		assert.ErrorIs(t, ie, ErrTokenContract)
	}()
	b.CopyToken(42)
}
