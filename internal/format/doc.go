// Package format pretty-prints VHDL configuration declarations and the
// constructs nested in them.
//
// Printers never synthesize keywords or delimiters: every character that is
// not whitespace is copied from a source token, addressed by the token ids
// the parser recorded on the tree. The Buffer decides only spaces, line
// breaks, indentation and where comments land.
//
// The printers trust the tree they are given. A node whose recorded token
// roles do not match the token stream, or that uses a construct the printers
// do not implement, aborts the whole call with an *InternalError instead of
// producing partial output.
package format
