package token

import (
	"vhdlfmt/internal/source"
)

// Token represents a single source token with its location and comment trivia.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// NewlinesBefore counts line breaks between the previous trivia (or token)
	// and this token.
	NewlinesBefore int
	Leading        []Trivia
	Trailing       []Trivia
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// BlankBefore reports whether the source had at least one empty line right
// before the token or before its first leading comment.
func (t Token) BlankBefore() bool {
	if len(t.Leading) > 0 {
		return t.Leading[0].BlankBefore
	}
	return t.NewlinesBefore >= 2
}

// EndsWithLineComment reports whether the token's trailing trivia runs to the
// end of the line.
func (t Token) EndsWithLineComment() bool {
	return len(t.Trailing) > 0 && t.Trailing[len(t.Trailing)-1].Kind == TriviaLineComment
}
