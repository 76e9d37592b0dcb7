package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// UI provides user interface methods
type UI struct {
	output      io.Writer
	interactive bool
	// Color functions
	colorWarning *color.Color
	colorError   *color.Color
	colorDim     *color.Color
	colorBold    *color.Color
	colorCyan    *color.Color
	colorYellow  *color.Color
	colorGreen   *color.Color
	colorRed     *color.Color
}

// New creates a new UI instance writing to stdout. Prompts are only shown
// when stdin is a terminal.
func New() *UI {
	return &UI{
		output:       os.Stdout,
		interactive:  isTerminal(os.Stdin),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorDim:     color.New(color.Faint),
		colorBold:    color.New(color.Bold),
		colorCyan:    color.New(color.FgCyan, color.Bold),
		colorYellow:  color.New(color.FgYellow),
		colorGreen:   color.New(color.FgGreen),
		colorRed:     color.New(color.FgRed),
	}
}

// NewWithWriter creates a non-interactive UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	ui.interactive = false
	return ui
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetInteractive overrides terminal detection for prompts
func (u *UI) SetInteractive(enabled bool) {
	u.interactive = enabled
}

// IsInteractive returns true if the user can be prompted
func (u *UI) IsInteractive() bool {
	return u.interactive
}

// IsTerminal reports whether output goes to a terminal, which is when
// progress is animated
func (u *UI) IsTerminal() bool {
	f, ok := u.output.(*os.File)
	return ok && isTerminal(f)
}

// Writer returns the writer all output goes to
func (u *UI) Writer() io.Writer {
	return u.output
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "Error: %s\n", msg)
}

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Version prints the version line
func (u *UI) Version(info string) {
	u.colorGreen.Fprintln(u.output, info)
}
