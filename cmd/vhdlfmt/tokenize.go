package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/diagfmt"
	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.vhd",
		Short: "Tokenize a VHDL source file",
		Long:  `Tokenize prints the token stream of a VHDL file together with its comment trivia`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
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
	done := timer.Begin("tokenize")
	result, err := driver.Tokenize(args[0], maxDiagnostics)
	done()
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Stream)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Stream, result.FileSet)
	}
	if err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), timer)
	if result.Bag.HasErrors() {
		return &exitError{msg: "tokenize: lexical errors"}
	}
	return nil
}
