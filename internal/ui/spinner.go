package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RunWithSpinner runs action behind a spinner titled title. While the
// spinner is drawn, action writes to a held copy of w that is flushed once
// the spinner stops. When show is false action writes to w directly.
func RunWithSpinner(ctx context.Context, w *Writer, title string, show bool, action func(*Writer) error) error {
	if !show {
		return action(w)
	}

	held, flush := w.Deferred()

	var actionErr error

	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() { actionErr = action(held) }).
		Run()

	if flushErr := flush(); flushErr != nil && err == nil && actionErr == nil {
		return fmt.Errorf("writing output: %w", flushErr)
	}

	if err != nil {
		return fmt.Errorf("spinner: %w", err)
	}

	return actionErr
}
