package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vhdlfmt/internal/ctxlog"
	"vhdlfmt/internal/diagfmt"
	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/format"
	"vhdlfmt/internal/observ"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format VHDL configuration declarations",
		Long: `Format rewrites .vhd/.vhdl files in place. Directories are walked recursively.
Use "-" to read from stdin and write to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFmt,
	}
	cmd.Flags().Bool("check", false, "check if files are properly formatted; exit 1 when they are not")
	cmd.Flags().Bool("diff", false, "print a unified diff instead of rewriting files")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	cmd.Flags().Int("indent", 4, "spaces per indentation level")
	cmd.Flags().Bool("tabs", false, "indent with tabs")
	cmd.Flags().StringSlice("exclude", nil, "doublestar glob of paths to skip (repeatable)")
	cmd.Flags().Bool("no-cache", false, "ignore the on-disk formatting cache")
	cmd.Flags().Bool("verify", false, "re-parse formatted output and check the structure is unchanged")
	return cmd
}

type fmtFlags struct {
	check, diff, stdout, verify, quiet, timings bool
	output                                      string
	jobs, maxDiagnostics                        int
	ui                                          uiMode
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var f fmtFlags
	var err error
	flags := cmd.Flags()
	if f.check, err = flags.GetBool("check"); err != nil {
		return f, err
	}
	if f.diff, err = flags.GetBool("diff"); err != nil {
		return f, err
	}
	if f.stdout, err = flags.GetBool("stdout"); err != nil {
		return f, err
	}
	if f.verify, err = flags.GetBool("verify"); err != nil {
		return f, err
	}
	if f.output, err = flags.GetString("format"); err != nil {
		return f, err
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return f, err
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	if f.quiet, err = flags.GetBool("quiet"); err != nil {
		return f, err
	}
	if f.timings, err = flags.GetBool("timings"); err != nil {
		return f, err
	}
	if f.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return f, err
	}

	switch {
	case f.output != "text" && f.output != "json":
		return f, fmt.Errorf("fmt: unsupported output format %q", f.output)
	case f.stdout && (f.check || f.diff):
		return f, errors.New("fmt: --stdout cannot be used with --check or --diff")
	case f.stdout && f.output != "text":
		return f, errors.New("fmt: --stdout is only supported with text output")
	}
	return f, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	f, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	log := ctxlog.FromContext(cmd.Context())
	if s.manifest != nil {
		log.Debug("loaded config", "path", s.manifest.Path)
	}

	opts := driver.FormatOptions{
		Check:          f.check || f.diff,
		Stdout:         f.stdout,
		Verify:         f.verify,
		MaxDiagnostics: f.maxDiagnostics,
		Options:        s.format,
		Jobs:           f.jobs,
		Filter:         s.filter,
	}
	if f.timings {
		opts.Timer = observ.NewTimer()
	}

	var results []driver.FormatResult
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("fmt: read stdin: %w", err)
		}
		opts.Stdout = !opts.Check
		results = []driver.FormatResult{driver.FormatSource("<stdin>", data, opts)}
	} else {
		cache, err := s.openCache()
		if err != nil {
			log.Warn("cache disabled", "err", err)
		}
		opts.Cache = cache

		files, err := driver.CollectSourceFiles(cmd.Context(), args, s.filter)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("fmt: %w", driver.ErrNoSourceFiles)
		}
		if shouldUseTUI(f.ui, len(files)) && !f.stdout && f.output == "text" {
			results, err = runFormatWithUI(cmd.Context(), cmd.OutOrStdout(), files, opts)
		} else {
			results, err = driver.FormatFiles(cmd.Context(), files, opts)
		}
		if err != nil {
			return err
		}
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var sum fmtSummary
	switch {
	case f.output == "json":
		sum, err = renderFmtJSON(out, results, opts.Check)
		if err != nil {
			return err
		}
	case opts.Stdout:
		sum = renderFmtStdout(out, errOut, results, f.quiet)
	default:
		sum = renderFmtText(out, errOut, results, f)
	}

	if opts.Timer != nil {
		printTimings(errOut, opts.Timer)
	}
	switch {
	case sum.failed > 0:
		return &exitError{msg: fmt.Sprintf("fmt: failed to format %d file(s)", sum.failed)}
	case opts.Check && sum.changed > 0:
		if !f.quiet && !f.diff && f.output == "text" {
			fmt.Fprintf(errOut, "fmt: %d file(s) need formatting\n", sum.changed)
		}
		return &exitError{msg: "fmt: formatting changes required"}
	}
	return nil
}

type fmtSummary struct {
	changed, failed int
}

func (s *fmtSummary) add(res driver.FormatResult) {
	switch {
	case res.Err != nil:
		s.failed++
	case res.Changed:
		s.changed++
	}
}

func renderFmtStdout(out, errOut io.Writer, results []driver.FormatResult, quiet bool) fmtSummary {
	var sum fmtSummary
	for _, res := range results {
		sum.add(res)
		reportResultDiagnostics(errOut, res, quiet)
		if res.Err != nil {
			reportFmtError(errOut, res)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return sum
}

func renderFmtText(out, errOut io.Writer, results []driver.FormatResult, f fmtFlags) fmtSummary {
	quiet := f.quiet
	var sum fmtSummary
	for _, res := range results {
		sum.add(res)
		reportResultDiagnostics(errOut, res, quiet)
		if res.Err != nil {
			reportFmtError(errOut, res)
			continue
		}
		if !res.Changed {
			continue
		}
		switch {
		case f.diff:
			diff, err := driver.Diff(res)
			if err != nil {
				fmt.Fprintf(errOut, "fmt: %s: diff: %v\n", res.Path, err)
				continue
			}
			fmt.Fprint(out, diff)
		case f.check:
			if !quiet {
				fmt.Fprintln(out, res.Path)
			}
		case !quiet:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	return sum
}

// reportFmtError separates printer contract violations from ordinary failures.
func reportFmtError(w io.Writer, res driver.FormatResult) {
	var internal *format.InternalError
	if errors.As(res.Err, &internal) {
		fmt.Fprintf(w, "internal error: %s: %v\n", res.Path, res.Err)
		return
	}
	fmt.Fprintf(w, "fmt: %s: %v\n", res.Path, res.Err)
}

func reportResultDiagnostics(w io.Writer, res driver.FormatResult, quiet bool) {
	if res.Bag == nil || res.FileSet == nil {
		return
	}
	if quiet && !res.Bag.HasErrors() {
		return
	}
	printDiagnostics(w, res.Bag, res.FileSet)
}

type fmtJSONResult struct {
	Path        string                   `json:"path"`
	Changed     bool                     `json:"changed"`
	Cached      bool                     `json:"cached,omitempty"`
	Check       bool                     `json:"check"`
	Error       string                   `json:"error,omitempty"`
	Internal    bool                     `json:"internal,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) (fmtSummary, error) {
	var sum fmtSummary
	payload := make([]fmtJSONResult, 0, len(results))
	for _, res := range results {
		sum.add(res)
		jr := fmtJSONResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, Check: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
			var internal *format.InternalError
			jr.Internal = errors.As(res.Err, &internal)
		}
		if res.Bag != nil && res.FileSet != nil {
			jr.Diagnostics = diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}).Diagnostics
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return sum, encoder.Encode(payload)
}
