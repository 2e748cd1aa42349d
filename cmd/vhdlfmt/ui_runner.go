package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"vhdlfmt/internal/driver"
	"vhdlfmt/internal/ui"
)

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI formats files while a Bubble Tea view consumes progress
// events on out.
func runFormatWithUI(ctx context.Context, out io.Writer, files []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatFiles(ctx, files, opts)
		outcomeCh <- formatOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("formatting", files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep draining so the formatter never blocks on a full channel
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
