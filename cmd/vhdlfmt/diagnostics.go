package main

import (
	"io"

	"github.com/fatih/color"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/diagfmt"
	"vhdlfmt/internal/source"
)

// printDiagnostics renders bag in source order; color follows the global
// --color decision.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     !color.NoColor,
		Context:   2,
		ShowNotes: true,
	})
}
