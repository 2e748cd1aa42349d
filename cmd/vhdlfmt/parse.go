package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/diagfmt"
	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/observ"
	"vhdlfmt/internal/parser"
	"vhdlfmt/internal/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.vhd",
		Short: "Parse a VHDL file and print its configuration tree",
		Long: `Parse reads a design file made of context clauses and configuration declarations
and prints the resulting tree. With --spec the file must hold a single
configuration specification instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("spec", false, "parse the file as a standalone configuration specification")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	spec, err := cmd.Flags().GetBool("spec")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}

	var (
		tree *diagfmt.TreeNode
		bag  *diag.Bag
		fs   *source.FileSet
	)
	done := timer.Begin("parse")
	if spec {
		tree, bag, fs, err = parseSpecification(args[0], maxDiagnostics)
	} else {
		var result *driver.ParseResult
		result, err = driver.Parse(args[0], maxDiagnostics)
		if err == nil {
			tree = diagfmt.BuildDesignTree(result.Stream, result.Design)
			bag, fs = result.Bag, result.FileSet
		}
	}
	done()
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if bag.Len() > 0 {
		printDiagnostics(cmd.ErrOrStderr(), bag, fs)
	}
	if tree != nil {
		out := cmd.OutOrStdout()
		if format == "json" {
			err = diagfmt.FormatTreeJSON(out, tree)
		} else {
			err = diagfmt.FormatTreePretty(out, tree, fs)
		}
		if err != nil {
			return err
		}
	}
	printTimings(cmd.ErrOrStderr(), timer)
	if bag.HasErrors() {
		return &exitError{msg: "parse: syntax errors"}
	}
	return nil
}

func parseSpecification(path string, maxDiagnostics int) (*diagfmt.TreeNode, *diag.Bag, *source.FileSet, error) {
	tr, err := driver.Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, nil, nil, err
	}
	cs, ok := parser.ParseConfigurationSpecification(tr.Stream, parser.Options{Reporter: &diag.BagReporter{Bag: tr.Bag}})
	if !ok {
		if !tr.Bag.HasErrors() {
			return nil, nil, nil, fmt.Errorf("%s: not a configuration specification", path)
		}
		return nil, tr.Bag, tr.FileSet, nil
	}
	return diagfmt.ConfigurationSpecificationTree(tr.Stream, cs), tr.Bag, tr.FileSet, nil
}
