// Package token defines lexical token kinds, comment trivia and the indexable
// token stream for VHDL sources.
// Invariants:
//   - Token.Text is the exact source text of the token.
//   - Keywords are matched case-insensitively; Text keeps the source casing.
//   - Comments never appear in the stream: a comment on the same line after a
//     token is that token's Trailing trivia, every other comment is Leading
//     trivia of the following token (the EOF token included).
//   - Stream ids are dense and start at 0; the last token is always EOF.
package token
