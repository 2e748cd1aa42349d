package ast

import "vhdlfmt/internal/token"

// Declaration is an item of a configuration declarative part:
// *UseClause, *AttributeSpecification or *GroupDeclaration.
type Declaration interface {
	TokenSpan() token.Span
	declaration()
}

// AttributeSpecification is `attribute a of b : c is expr;` kept as a token run.
type AttributeSpecification struct {
	Span token.Span
}

// GroupDeclaration is `group g : tmpl (a, b);` kept as a token run.
type GroupDeclaration struct {
	Span token.Span
}

func (d *AttributeSpecification) TokenSpan() token.Span { return d.Span }
func (d *GroupDeclaration) TokenSpan() token.Span       { return d.Span }

func (*UseClause) declaration()              {}
func (*AttributeSpecification) declaration() {}
func (*GroupDeclaration) declaration()       {}
