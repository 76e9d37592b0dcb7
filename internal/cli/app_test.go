package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/xn/internal/config"
	"github.com/zoro11031/xn/internal/runner"
	"github.com/zoro11031/xn/internal/system"
	"github.com/zoro11031/xn/internal/ui"
)

type countingCommands struct {
	mu    sync.Mutex
	calls int
	next  system.CommandRunner
}

func (c *countingCommands) Run(ctx context.Context, command string) system.Result {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.next != nil {
		return c.next.Run(ctx, command)
	}
	return system.Result{ExitCode: 0, Stdout: command + "\n"}
}

// newTestConfig parses argv the way the root command does and returns the
// resulting config plus the positional arguments.
func newTestConfig(t *testing.T, argv ...string) (*config.Config, []string) {
	t.Helper()
	for _, key := range []string{"XN_COUNT", "XN_SILENT", "XN_SHELL", "XN_TIMEOUT", "XN_CONFIRM_ABOVE", "XN_YES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	fs := pflag.NewFlagSet("xn", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(argv))

	cfg := config.New(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, cfg.Load())
	require.NoError(t, cfg.BindFlags(fs))
	return cfg, fs.Args()
}

func reqWithCount(n int) runner.Request {
	return runner.Request{Count: n, Command: "true"}
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	return NewApp(cfg, ui.NewWithWriter(&buf)), &buf
}

func TestResolveRequest(t *testing.T) {
	tests := []struct {
		name        string
		argv        []string
		wantCount   int
		wantCommand string
		wantSilent  bool
	}{
		{"defaults", []string{"echo hi"}, 1, "echo hi", false},
		{"short flags", []string{"-n", "5", "-s", "date"}, 5, "date", true},
		{"long flags", []string{"--count", "3", "--silent", "uptime"}, 3, "uptime", true},
		{"count fallback", []string{"-n", "lots", "ls"}, 1, "ls", false},
		{"flags after command belong to it", []string{"-n", "2", "ls", "-la", "-s"}, 2, "ls -la -s", false},
		{"double dash", []string{"--", "echo", "a  b"}, 1, "echo a  b", false},
		{"verbatim shell syntax", []string{"echo $HOME | tr a-z A-Z"}, 1, "echo $HOME | tr a-z A-Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, args := newTestConfig(t, tt.argv...)

			req, err := ResolveRequest(cfg, args)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, req.Count)
			assert.Equal(t, tt.wantCommand, req.Command)
			assert.Equal(t, tt.wantSilent, req.Silent)
		})
	}
}

func TestResolveRequestWithoutCommand(t *testing.T) {
	for _, argv := range [][]string{{}, {"-n", "3"}, {"  "}} {
		cfg, args := newTestConfig(t, argv...)

		_, err := ResolveRequest(cfg, args)

		assert.ErrorIs(t, err, ErrNoCommand)
		assert.ErrorIs(t, err, ErrUsage)
	}
}

func TestExecuteWithoutCommandSpawnsNothing(t *testing.T) {
	cfg, args := newTestConfig(t, "-n", "3")
	app, buf := newTestApp(t, cfg)
	cmds := &countingCommands{}
	app.Commands = cmds

	err := app.Execute(context.Background(), args)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Zero(t, cmds.calls)
	assert.Empty(t, buf.String())
}

func TestExecuteReportsEveryRun(t *testing.T) {
	cfg, args := newTestConfig(t, "-n", "2", "hello")
	app, buf := newTestApp(t, cfg)
	cmds := &countingCommands{}
	app.Commands = cmds

	require.NoError(t, app.Execute(context.Background(), args))

	out := buf.String()
	assert.Equal(t, 2, cmds.calls)
	assert.True(t, strings.HasPrefix(out, "┌   xn 2 \n"))
	assert.Equal(t, 2, strings.Count(out, "exit code  0"))
	assert.Equal(t, 2, strings.Count(out, "│   hello"))
	assert.True(t, strings.HasSuffix(out, "└  ✓ Completed\n"))
}

func TestExecuteSilentKeepsBanners(t *testing.T) {
	cfg, args := newTestConfig(t, "-s", "-n", "3", "noisy")
	app, buf := newTestApp(t, cfg)
	cmds := &countingCommands{}
	app.Commands = cmds

	require.NoError(t, app.Execute(context.Background(), args))

	out := buf.String()
	assert.Equal(t, 3, cmds.calls)
	assert.Contains(t, out, "xn 3")
	assert.Contains(t, out, "✓ Completed")
	assert.Equal(t, 3, strings.Count(out, "Execution completed."))
	assert.NotContains(t, out, "exit code  ")
	assert.NotContains(t, out, "stdout")
	assert.NotContains(t, out, "noisy")
}

func TestExecuteRealShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	cfg, args := newTestConfig(t, "-n", "2", "echo out; echo err >&2; exit 3")
	app, buf := newTestApp(t, cfg)

	require.NoError(t, app.Execute(context.Background(), args))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "exit code  3"))
	assert.Equal(t, 2, strings.Count(out, "│   out"))
	assert.Equal(t, 2, strings.Count(out, "│   err"))
	assert.Equal(t, 2, strings.Count(out, "▲  Execution completed."))
}

func TestExecuteMissingShellFailsEachRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a Unix path layout")
	}
	cfg, args := newTestConfig(t, "-n", "2", "--shell", "/no/such/shell", "echo hi")
	app, buf := newTestApp(t, cfg)

	require.NoError(t, app.Execute(context.Background(), args))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "exit code  -1"))
	assert.Contains(t, out, "/no/such/shell")
	assert.Contains(t, out, "✓ Completed")
}

func TestExecuteInvalidTimeoutIsUsageError(t *testing.T) {
	cfg, args := newTestConfig(t, "echo hi")
	t.Setenv("XN_TIMEOUT", "whenever")
	app, _ := newTestApp(t, cfg)

	err := app.Execute(context.Background(), args)

	assert.ErrorIs(t, err, ErrUsage)
}

func TestExecuteCanceled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	cfg, args := newTestConfig(t, "-n", "3", "sleep 10")
	app, buf := newTestApp(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	err := app.Execute(ctx, args)

	assert.ErrorIs(t, err, ErrCanceled)
	assert.Contains(t, buf.String(), "■  Canceled")
	assert.NotContains(t, buf.String(), "✓ Completed")
}

func TestConfirmSkippedWithoutTerminal(t *testing.T) {
	cfg, args := newTestConfig(t, "-n", "5000", "true")
	app, _ := newTestApp(t, cfg)
	cmds := &countingCommands{}
	app.Commands = cmds

	require.NoError(t, app.Execute(context.Background(), args))

	assert.Equal(t, 5000, cmds.calls)
}

func TestConfirmThresholds(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		env   string
		count int
	}{
		{"below threshold", []string{"true"}, "", 10},
		{"assume yes", []string{"-y", "true"}, "", 5000},
		{"disabled", []string{"true"}, "0", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := newTestConfig(t, tt.argv...)
			if tt.env != "" {
				t.Setenv("XN_CONFIRM_ABOVE", tt.env)
			}
			app, _ := newTestApp(t, cfg)
			// Interactive, so only the thresholds can skip the prompt.
			app.UI.SetInteractive(true)

			ok, err := app.confirm(reqWithCount(tt.count))

			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}
