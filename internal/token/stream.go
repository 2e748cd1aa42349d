package token

import "vhdlfmt/internal/source"

// ID indexes a token inside a Stream.
type ID uint32

// NoID marks an absent optional token role.
const NoID ID = ^ID(0)

func (id ID) IsValid() bool { return id != NoID }

// Span is an inclusive token range [Start, End] recorded by the parser.
type Span struct {
	Start ID
	End   ID
}

// NewSpan returns the span covering start..end.
func NewSpan(start, end ID) Span { return Span{Start: start, End: end} }

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	if !s.Start.IsValid() || !s.End.IsValid() || s.End < s.Start {
		return 0
	}
	return int(s.End-s.Start) + 1
}

// Stream is the indexable token sequence of one file.
type Stream struct {
	File   *source.File
	tokens []Token
}

// NewStream wraps tokens lexed from file. The last token must be EOF.
func NewStream(file *source.File, tokens []Token) *Stream {
	return &Stream{File: file, tokens: tokens}
}

// Len returns the number of tokens including EOF.
func (s *Stream) Len() int { return len(s.tokens) }

// Get returns the token with the given id, or false when id is out of range.
func (s *Stream) Get(id ID) (Token, bool) {
	if s == nil || !id.IsValid() || int(id) >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[id], true
}

// At returns a pointer to the token with the given id or nil.
func (s *Stream) At(id ID) *Token {
	if s == nil || !id.IsValid() || int(id) >= len(s.tokens) {
		return nil
	}
	return &s.tokens[id]
}

// Kind returns the kind of token id, or Invalid when id is out of range.
func (s *Stream) Kind(id ID) Kind {
	if t := s.At(id); t != nil {
		return t.Kind
	}
	return Invalid
}

// Tokens returns the underlying slice. Callers must not modify it.
func (s *Stream) Tokens() []Token { return s.tokens }

// EOF returns the id of the final EOF token.
func (s *Stream) EOF() ID { return ID(len(s.tokens) - 1) }
