package token

import "vhdlfmt/internal/source"

type TriviaKind uint8

const (
	TriviaLineComment  TriviaKind = iota // -- ...
	TriviaBlockComment                   // /* ... */
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(" + itoa(int(k)) + ")"
}

// Trivia is a comment attached to a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
	// BlankBefore is set on leading comments preceded by an empty line.
	BlankBefore bool
}
