package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

type TriviaOutput struct {
	Kind        string `json:"kind"`
	Text        string `json:"text"`
	BlankBefore bool   `json:"blank_before,omitempty"`
}

type TokenOutput struct {
	ID             token.ID       `json:"id"`
	Kind           string         `json:"kind"`
	Text           string         `json:"text,omitempty"`
	Span           source.Span    `json:"span"`
	NewlinesBefore int            `json:"newlines_before,omitempty"`
	Leading        []TriviaOutput `json:"leading,omitempty"`
	Trailing       []TriviaOutput `json:"trailing,omitempty"`
}

func triviaOutput(list []token.Trivia) []TriviaOutput {
	if len(list) == 0 {
		return nil
	}
	out := make([]TriviaOutput, len(list))
	for i, tr := range list {
		out[i] = TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text, BlankBefore: tr.BlankBefore}
	}
	return out
}

// FormatTokensPretty prints one token per line with its position and comments.
func FormatTokensPretty(w io.Writer, ts *token.Stream, fs *source.FileSet) error {
	for i, tok := range ts.Tokens() {
		startPos, endPos := fs.Resolve(tok.Span)

		var b strings.Builder
		for _, tr := range tok.Leading {
			fmt.Fprintf(&b, "     %s %q\n", tr.Kind, tr.Text)
		}
		fmt.Fprintf(&b, "%3d: %-15s", i, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.NewlinesBefore > 1 {
			b.WriteString(" (blank line before)")
		}
		for _, tr := range tok.Trailing {
			fmt.Fprintf(&b, " (trailing %s %q)", tr.Kind, tr.Text)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON prints the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, ts *token.Stream) error {
	tokens := ts.Tokens()
	output := make([]TokenOutput, len(tokens))
	for i, tok := range tokens {
		output[i] = TokenOutput{
			ID:             token.ID(i),
			Kind:           tok.Kind.String(),
			Text:           tok.Text,
			Span:           tok.Span,
			NewlinesBefore: tok.NewlinesBefore,
			Leading:        triviaOutput(tok.Leading),
			Trailing:       triviaOutput(tok.Trailing),
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
