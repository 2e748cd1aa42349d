// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form, a short Message, the Primary source.Span and optional Notes.
// Producers emit through a Reporter; BagReporter collects into a Bag which
// supports sorting and deduplication.
//
// Package diag performs no IO. Rendering lives in internal/diagfmt.
//
// Diagnostics describe problems in the input file. Contract violations inside
// the formatter are not diagnostics; they surface as format.InternalError.
package diag
