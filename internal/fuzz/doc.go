// Package fuzztests houses Go fuzz harnesses that exercise the formatting
// pipeline (source -> lexer -> parser -> printer). The harnesses smoke test
// robustness and guard against panics, hangs and non-idempotent output on
// arbitrary inputs.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
