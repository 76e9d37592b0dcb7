package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/zoro11031/xn/internal/runner"
)

var spinnerFrames = []string{"◒", "◐", "◓", "◑"}

// TerminalPrinter renders runs as a vertical timeline with an animated
// spinner while each run executes. It is the interactive runner.Printer.
type TerminalPrinter struct {
	ui      *UI
	spinner *spinner.Spinner
	total   int
	animate bool

	labelExit   *color.Color
	labelStdout *color.Color
	labelStderr *color.Color
	intro       *color.Color
}

var _ runner.Printer = (*TerminalPrinter)(nil)

// NewTerminalPrinter creates a printer writing through u. The spinner only
// animates when u writes to a terminal; otherwise a static line is printed.
func NewTerminalPrinter(u *UI) *TerminalPrinter {
	s := spinner.New(spinnerFrames, 100*time.Millisecond, spinner.WithWriter(u.Writer()))
	_ = s.Color("magenta")

	return &TerminalPrinter{
		ui:          u,
		spinner:     s,
		animate:     u.IsTerminal(),
		labelExit:   color.New(color.BgMagenta, color.FgWhite),
		labelStdout: color.New(color.BgBlue, color.FgWhite),
		labelStderr: color.New(color.BgRed, color.FgWhite),
		intro:       color.New(color.BgBlue, color.FgWhite),
	}
}

func (p *TerminalPrinter) bar() string {
	return p.ui.colorDim.Sprint("│")
}

// ShowIntro prints the opening banner with the planned run count.
func (p *TerminalPrinter) ShowIntro(count int) {
	p.total = count
	fmt.Fprintf(p.ui.Writer(), "%s  %s\n", p.ui.colorDim.Sprint("┌"), p.intro.Sprintf(" xn %d ", count))
	fmt.Fprintln(p.ui.Writer(), p.bar())
}

// StartRun shows the executing indicator for run index.
func (p *TerminalPrinter) StartRun(index int) {
	msg := fmt.Sprintf("Executing command... %s", p.ui.colorDim.Sprintf("[%d/%d]", index, p.total))
	if !p.animate {
		fmt.Fprintf(p.ui.Writer(), "%s  %s\n", spinnerFrames[0], msg)
		return
	}
	p.spinner.Suffix = "  " + msg
	p.spinner.Start()
}

// FinishRun replaces the indicator with the run's completion state.
func (p *TerminalPrinter) FinishRun(outcome runner.Outcome) {
	p.stopSpinner()

	symbol := p.ui.colorGreen.Sprint("◇")
	if !outcome.Success {
		symbol = p.ui.colorRed.Sprint("▲")
	}
	detail := p.ui.colorDim.Sprintf("(exit code %d, %s)", outcome.ExitCode, formatDuration(outcome.Duration))
	fmt.Fprintf(p.ui.Writer(), "%s  Execution completed. %s\n", symbol, detail)
}

// CancelRun stops the indicator of an abandoned run.
func (p *TerminalPrinter) CancelRun() {
	p.stopSpinner()
	fmt.Fprintf(p.ui.Writer(), "%s  Canceled\n", p.ui.colorRed.Sprint("■"))
}

func (p *TerminalPrinter) stopSpinner() {
	if p.animate {
		p.spinner.Stop()
	}
}

// PrintResult prints the exit code and the captured streams of one run.
func (p *TerminalPrinter) PrintResult(outcome runner.Outcome) {
	w := p.ui.Writer()
	bar := p.bar()
	indent := "  "

	fmt.Fprintln(w, bar)
	fmt.Fprintf(w, "%s %s %s\n", bar, p.labelExit.Sprint(" exit code "), p.ui.colorBold.Sprint(outcome.ExitCode))

	if outcome.Stdout != "" {
		fmt.Fprintln(w, bar)
		fmt.Fprintf(w, "%s %s\n", bar, p.labelStdout.Sprint(" stdout "))
		for _, line := range splitLines(outcome.Stdout) {
			fmt.Fprintf(w, "%s %s%s\n", bar, indent, line)
		}
	}

	if outcome.Stderr != "" {
		if outcome.Stdout == "" {
			fmt.Fprintln(w, bar)
		}
		fmt.Fprintf(w, "%s %s\n", bar, p.labelStderr.Sprint(" stderr "))
		for _, line := range splitLines(outcome.Stderr) {
			fmt.Fprintf(w, "%s %s%s\n", bar, indent, p.ui.colorRed.Sprint(line))
		}
	}

	if outcome.Stdout == "" && outcome.Stderr == "" {
		fmt.Fprintln(w, bar)
		fmt.Fprintf(w, "%s %s%s\n", bar, indent, p.ui.colorDim.Sprint("(no output)"))
	}
	fmt.Fprintln(w, bar)
}

// ShowOutro prints the closing banner.
func (p *TerminalPrinter) ShowOutro() {
	fmt.Fprintf(p.ui.Writer(), "%s  %s\n", p.ui.colorDim.Sprint("└"), p.ui.colorGreen.Sprint("✓ Completed"))
}

// splitLines splits captured text into display lines, ignoring the final newline.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return d.Round(time.Millisecond).String()
	}
}
