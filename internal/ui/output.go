// Package ui provides consistent styled output for the create-skeleton-app CLI.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	colorRed    = lipgloss.Color("196")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("220")
	colorCyan   = lipgloss.Color("14")
	colorGray   = lipgloss.Color("245")
)

// Writer provides styled output methods that respect color settings.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool

	outR *lipgloss.Renderer
	errR *lipgloss.Renderer
}

// NewWriter creates a Writer that writes to stdout/stderr.
// Color is disabled when noColor is true or the NO_COLOR env var is set.
func NewWriter(noColor bool) *Writer {
	return NewWriterWithOutputs(os.Stdout, os.Stderr, noColor || os.Getenv("NO_COLOR") != "")
}

// NewWriterWithOutputs creates a Writer with custom output destinations.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{
		out:     out,
		errOut:  errOut,
		noColor: noColor,
		outR:    lipgloss.NewRenderer(out),
		errR:    lipgloss.NewRenderer(errOut),
	}
}

// Out returns the standard output stream.
func (w *Writer) Out() io.Writer {
	return w.out
}

// ErrOut returns the error stream.
func (w *Writer) ErrOut() io.Writer {
	return w.errOut
}

// Deferred returns a Writer styled like w whose output is held in memory.
// flush copies the held stdout then stderr text to w's streams.
func (w *Writer) Deferred() (held *Writer, flush func() error) {
	var out, errOut bytes.Buffer

	held = &Writer{
		out:     &out,
		errOut:  &errOut,
		noColor: w.noColor,
		outR:    w.outR,
		errR:    w.errR,
	}

	return held, func() error {
		if _, err := out.WriteTo(w.out); err != nil {
			return err
		}

		_, err := errOut.WriteTo(w.errOut)

		return err
	}
}

// Success prints a success message with a green checkmark prefix.
func (w *Writer) Success(msg string) {
	writeLine(w.out, w.render(w.outR.NewStyle().Foreground(colorGreen), "✓"), msg)
}

// Warning prints a warning message to stderr with a yellow prefix.
func (w *Writer) Warning(msg string) {
	writeLine(w.errOut, w.render(w.errR.NewStyle().Foreground(colorYellow), "warning:"), msg)
}

// Error prints an error message to stderr with a bold red prefix.
func (w *Writer) Error(msg string) {
	writeLine(w.errOut, w.render(w.errR.NewStyle().Bold(true).Foreground(colorRed), "error:"), msg)
}

// Info prints an informational message with a cyan prefix.
func (w *Writer) Info(msg string) {
	writeLine(w.out, w.render(w.outR.NewStyle().Foreground(colorCyan), "info:"), msg)
}

// Raw copies tool output to the error stream unchanged.
func (w *Writer) Raw(text string) {
	if text != "" {
		_, _ = io.WriteString(w.errOut, text)
	}
}

// Verbatim copies tool output to the standard output stream unchanged.
func (w *Writer) Verbatim(text string) {
	if text != "" {
		_, _ = io.WriteString(w.out, text)
	}
}

// Println prints msg on its own line.
func (w *Writer) Println(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Bold returns text in bold.
func (w *Writer) Bold(msg string) string {
	return w.render(w.outR.NewStyle().Bold(true), msg)
}

// Heading returns text in bold cyan.
func (w *Writer) Heading(msg string) string {
	return w.render(w.outR.NewStyle().Bold(true).Foreground(colorCyan), msg)
}

// Dim returns text in gray.
func (w *Writer) Dim(msg string) string {
	return w.render(w.outR.NewStyle().Foreground(colorGray), msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

func (w *Writer) render(style lipgloss.Style, text string) string {
	if w.noColor {
		return text
	}

	return style.Render(text)
}

func writeLine(out io.Writer, prefix, msg string) {
	if _, err := fmt.Fprintf(out, "%s %s\n", prefix, msg); err != nil {
		return
	}
}
