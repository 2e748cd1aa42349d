package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vhdlfmt/internal/ctxlog"
	"vhdlfmt/internal/prof"
	"vhdlfmt/internal/version"
)

// main registers subcommands and persistent flags, then executes the root
// command. Any returned error exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if stopErr := stopProfiling(); stopErr != nil {
		fmt.Fprintln(os.Stderr, stopErr)
	}
	if err != nil {
		var silent *exitError
		if !errors.As(err, &silent) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "vhdlfmt",
		Short:             "Formatter for VHDL configuration declarations",
		Long:              `vhdlfmt re-indents VHDL configuration declarations while keeping every token and comment of the source`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupGlobals,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return stopProfiling()
		},
	}

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text|json)")
	rootCmd.PersistentFlags().String("config", "", "path to vhdlfmt.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("trace", "", "write runtime trace to file")
	return rootCmd
}

// setupGlobals applies --color and installs the slog logger into the command
// context.
func setupGlobals(cmd *cobra.Command, _ []string) error {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	useColor, err := resolveColor(colorFlag, isTerminal(os.Stderr))
	if err != nil {
		return err
	}
	color.NoColor = !useColor

	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	logFormat, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return err
	}
	logger, err := ctxlog.New(level, logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return startProfiling(cmd)
}

// profSession is the profile recording started by --cpuprofile, --memprofile
// or --trace.
var profSession *prof.Session

func startProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	var err error
	if opts.CPU, err = cmd.Flags().GetString("cpuprofile"); err != nil {
		return err
	}
	if opts.Mem, err = cmd.Flags().GetString("memprofile"); err != nil {
		return err
	}
	if opts.Trace, err = cmd.Flags().GetString("trace"); err != nil {
		return err
	}
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return err
	}
	profSession = session
	ctxlog.FromContext(cmd.Context()).Debug("profiling started", "cpu", opts.CPU, "mem", opts.Mem, "trace", opts.Trace)
	return nil
}

func stopProfiling() error {
	session := profSession
	profSession = nil
	return session.Stop()
}

func resolveColor(value string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return tty && os.Getenv("NO_COLOR") == "", nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// exitError carries a non-zero exit whose message was already printed.
type exitError struct{ msg string }

func (e *exitError) Error() string { return e.msg }

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
