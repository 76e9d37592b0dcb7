// Package runner implements the execution loop: it runs one shell command a
// fixed number of times, strictly one after another, and hands every outcome
// to a Printer.
package runner

import (
	"context"

	"github.com/zoro11031/xn/internal/logger"
	"github.com/zoro11031/xn/internal/system"
)

// Printer renders progress and results. Implementations must not retain
// outcomes beyond the call that receives them.
type Printer interface {
	// ShowIntro announces the planned number of runs.
	ShowIntro(count int)
	// StartRun shows that run index is executing.
	StartRun(index int)
	// FinishRun replaces the executing indicator with a completion state.
	FinishRun(outcome Outcome)
	// CancelRun stops the executing indicator when the run set is abandoned.
	CancelRun()
	// PrintResult renders the detail block for one run.
	PrintResult(outcome Outcome)
	// ShowOutro closes the report after the last run.
	ShowOutro()
}

// Runner runs a Request through a CommandRunner and reports to a Printer.
type Runner struct {
	commands system.CommandRunner
	printer  Printer
}

// New creates a Runner.
func New(commands system.CommandRunner, printer Printer) *Runner {
	return &Runner{commands: commands, printer: printer}
}

// Run performs exactly req.Count sequential runs of req.Command. A failing run
// never stops the loop; only cancellation of ctx does, in which case the
// in-flight indicator is stopped and ctx's error is returned.
func (r *Runner) Run(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	logger.Debug("starting run set", "count", req.Count, "command", req.Command, "silent", req.Silent)
	r.printer.ShowIntro(req.Count)

	for i := 1; i <= req.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printer.StartRun(i)
		res := r.commands.Run(ctx, req.Command)
		if err := ctx.Err(); err != nil {
			r.printer.CancelRun()
			return err
		}

		outcome := newOutcome(i, res)
		logger.Debug("run finished", "index", outcome.Index, "exit_code", outcome.ExitCode,
			"duration_ms", outcome.DurationMs())
		if res.Err != nil {
			logger.Debug("run failed", "index", i, "err", res.Err)
		}

		r.printer.FinishRun(outcome)
		if !req.Silent {
			r.printer.PrintResult(outcome)
		}
	}

	r.printer.ShowOutro()
	return nil
}

func newOutcome(index int, res system.Result) Outcome {
	return Outcome{
		Index:    index,
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Duration: res.Duration,
		Success:  res.ExitCode == 0,
	}
}
