package ast

import "vhdlfmt/internal/token"

// ContextItem is one of *LibraryClause, *UseClause, *ContextReference.
type ContextItem interface {
	TokenSpan() token.Span
	contextItem()
}

// LibraryClause is `library a, b;`.
type LibraryClause struct {
	Span   token.Span // library ... ;
	Names  []Ident
	Commas []token.ID
}

// UseClause is `use a.b.all, c.d;`. It appears both in context clauses and
// in declarative parts.
type UseClause struct {
	Span   token.Span // use ... ;
	Names  []Name
	Commas []token.ID
}

// ContextReference is `context lib.ctx;`.
type ContextReference struct {
	Span   token.Span // context ... ;
	Names  []Name
	Commas []token.ID
}

func (c *LibraryClause) TokenSpan() token.Span    { return c.Span }
func (c *UseClause) TokenSpan() token.Span        { return c.Span }
func (c *ContextReference) TokenSpan() token.Span { return c.Span }

func (*LibraryClause) contextItem()    {}
func (*UseClause) contextItem()        {}
func (*ContextReference) contextItem() {}
