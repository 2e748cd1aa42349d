package ast

import "vhdlfmt/internal/token"

// Ident is a single identifier token.
type Ident struct {
	Token token.ID
}

// Name is any name (selected, indexed, sliced or attribute) kept as the token
// run it was written with.
type Name struct {
	Span token.Span
}

// Expr is an expression kept as a balanced token run.
type Expr struct {
	Span token.Span
}
