// Package cli connects the command line to the execution loop: it resolves
// arguments into a run request, builds the shell runner from configuration,
// and maps loop results onto the process's error taxonomy.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/zoro11031/xn/internal/common"
	"github.com/zoro11031/xn/internal/config"
	"github.com/zoro11031/xn/internal/logger"
	"github.com/zoro11031/xn/internal/runner"
	"github.com/zoro11031/xn/internal/system"
	"github.com/zoro11031/xn/internal/ui"
)

var (
	// ErrUsage marks errors caused by how the tool was invoked
	ErrUsage = errors.New("usage error")

	// ErrNoCommand is returned when no command argument was supplied
	ErrNoCommand = fmt.Errorf("%w: no command specified", ErrUsage)

	// ErrCanceled is returned when the run set was abandoned on request
	ErrCanceled = errors.New("execution canceled")
)

// App holds all dependencies needed to execute a run set
type App struct {
	Config  *config.Config
	UI      *ui.UI
	Printer runner.Printer
	// Commands overrides the shell runner built from Config
	Commands system.CommandRunner
}

// NewApp creates an App that reports through the interactive terminal printer
func NewApp(cfg *config.Config, u *ui.UI) *App {
	return &App{
		Config:  cfg,
		UI:      u,
		Printer: ui.NewTerminalPrinter(u),
	}
}

// ResolveRequest turns positional arguments into a run request. The first
// argument is the command; any further arguments are appended to it,
// separated by single spaces, so `xn -n 2 ls -la` runs "ls -la".
func ResolveRequest(cfg *config.Config, args []string) (runner.Request, error) {
	command := strings.Join(args, " ")
	if err := common.ValidateCommand(command); err != nil {
		return runner.Request{}, ErrNoCommand
	}

	return runner.Request{
		Count:   cfg.Count(),
		Command: command,
		Silent:  cfg.Silent(),
	}, nil
}

// Execute resolves args and runs the resulting request until it completes or
// ctx is cancelled
func (a *App) Execute(ctx context.Context, args []string) error {
	req, err := ResolveRequest(a.Config, args)
	if err != nil {
		return err
	}

	commands, err := a.commandRunner()
	if err != nil {
		return err
	}

	proceed, err := a.confirm(req)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrCanceled
		}
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !proceed {
		a.UI.Warningf("Aborted, %q was not run", req.Command)
		return nil
	}

	logger.Debug("resolved request", "count", req.Count, "command", req.Command, "silent", req.Silent)
	err = runner.New(commands, a.Printer).Run(ctx, req)
	if errors.Is(err, context.Canceled) {
		return ErrCanceled
	}
	return err
}

func (a *App) commandRunner() (system.CommandRunner, error) {
	if a.Commands != nil {
		return a.Commands, nil
	}

	timeout, err := a.Config.Timeout()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	shell := a.Config.Shell()
	if shell != "" && !system.CommandExists(shell) {
		logger.Warn("shell not found, every run will fail to start", "shell", shell)
	}
	logger.Debug("shell runner", "shell", shell, "timeout", timeout)

	return system.NewCommandRunner(shell, timeout), nil
}

// confirm asks before unusually large run sets. It never prompts without a
// terminal, and --yes or a zero threshold disable it.
func (a *App) confirm(req runner.Request) (bool, error) {
	limit := a.Config.ConfirmAbove()
	if limit <= 0 || req.Count <= limit || a.Config.AssumeYes() || !a.UI.IsInteractive() {
		return true, nil
	}
	return a.UI.PromptYesNo(fmt.Sprintf("Run %q %d times?", req.Command, req.Count), false)
}
