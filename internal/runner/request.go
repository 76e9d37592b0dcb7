package runner

import (
	"fmt"
	"time"

	"github.com/zoro11031/xn/internal/common"
)

// Request describes one invocation of the tool: run Command Count times.
type Request struct {
	Count   int
	Command string
	// Silent suppresses per-run detail blocks; progress and banners still show.
	Silent bool
}

// Validate checks the invariants the execution loop relies on.
func (r Request) Validate() error {
	if err := common.ValidateCount(r.Count); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if err := common.ValidateCommand(r.Command); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

// Outcome is the recorded result of one run.
type Outcome struct {
	// Index is 1-based.
	Index    int
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	// Success is ExitCode == 0.
	Success bool
}

// DurationMs returns the run's wall-clock duration in milliseconds.
func (o Outcome) DurationMs() float64 {
	return float64(o.Duration) / float64(time.Millisecond)
}
