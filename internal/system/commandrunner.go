package system

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait keeps draining pipes held open by
// descendants after the shell has exited or been killed.
const waitDelay = 5 * time.Second

// ErrTimeout is reported when a run exceeds the configured per-run timeout.
var ErrTimeout = errors.New("timeout")

// CommandRunner defines an interface for running a command string through a shell.
type CommandRunner interface {
	Run(ctx context.Context, command string) Result
}

// Result is what one shell invocation produced.
//
// Err is set only when the tool itself failed: the interpreter could not be
// started or awaited, the run timed out, or ctx was cancelled. A command that
// exits non-zero is not an error; its code is in ExitCode.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// ShellRunner executes commands using the platform shell.
type ShellRunner struct {
	// Shell overrides the interpreter; empty means DefaultShell.
	Shell string
	// Timeout kills a run that takes longer; zero means no limit.
	Timeout time.Duration
	// MaxOutput caps each captured stream; zero means MaxOutputSize.
	MaxOutput int
}

// NewCommandRunner returns a shell runner with the given interpreter override and timeout.
func NewCommandRunner(shell string, timeout time.Duration) *ShellRunner {
	return &ShellRunner{Shell: shell, Timeout: timeout, MaxOutput: MaxOutputSize}
}

// Run executes command and blocks until the shell and its captured streams are done.
// Stdin is not forwarded. When ctx is cancelled the shell's whole process
// group is killed and reaped before Run returns.
func (r *ShellRunner) Run(ctx context.Context, command string) Result {
	start := time.Now()

	runCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	limit := r.MaxOutput
	if limit <= 0 {
		limit = MaxOutputSize
	}
	stdout := newLimitedBuffer(limit)
	stderr := newLimitedBuffer(limit)

	name, args := ShellCommand(r.Shell, command)
	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }

	err := cmd.Run()
	res := Result{
		Duration: time.Since(start),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	switch {
	case ctx.Err() != nil:
		res.ExitCode = -1
		res.Err = fmt.Errorf("run interrupted: %w", ctx.Err())
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.ExitCode = -1
		res.Err = fmt.Errorf("%w: command exceeded %v", ErrTimeout, r.Timeout)
		res.Stderr = appendLine(res.Stderr, res.Err.Error())
	case err == nil:
		res.ExitCode = 0
	default:
		code, exited := exitCodeFrom(err, cmd)
		res.ExitCode = code
		if !exited {
			res.Err = err
			res.Stdout = ""
			res.Stderr = err.Error()
		}
	}

	return res
}

// exitCodeFrom extracts the child's exit code. exited is false when the
// shell could not be started or awaited at all. A child killed by a signal
// reports -1, matching os.ProcessState.
func exitCodeFrom(err error, cmd *exec.Cmd) (code int, exited bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	// Pipes outlived the shell; the shell's own status still stands.
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode(), true
	}
	return -1, false
}

func appendLine(text, line string) string {
	if text != "" && text[len(text)-1] != '\n' {
		text += "\n"
	}
	return text + line
}
