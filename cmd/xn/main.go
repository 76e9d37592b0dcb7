package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zoro11031/xn/internal/cli"
	"github.com/zoro11031/xn/internal/config"
	"github.com/zoro11031/xn/internal/logger"
	"github.com/zoro11031/xn/internal/ui"
	"github.com/zoro11031/xn/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "xn [options] <command>",
	Short: "Execute a command multiple times",
	Long: `Run a shell command a fixed number of times, one after another, and
report the exit code, stdout and stderr of every run.

Everything after the first non-flag argument belongs to the command.`,
	SilenceUsage:  true, // Usage is printed by main for usage errors only
	SilenceErrors: true, // We format errors ourselves for consistent output
	Args:          cobra.ArbitraryArgs,
	RunE:          runCommand,
}

func init() {
	cli.RegisterFlags(rootCmd.Flags())

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printUsage(cmd.Flags())
	})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})
}

func printUsage(fs *pflag.FlagSet) {
	ui.New().Usage(cli.UsageFor(fs))
}

func runCommand(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if showVersion, _ := flags.GetBool(cli.FlagVersion); showVersion {
		ui.New().Version(version.Info())
		return nil
	}

	configPath, _ := flags.GetString(cli.FlagConfig)
	cfg := config.New(configPath)
	if err := cfg.Load(); err != nil {
		return err
	}
	if err := cfg.BindFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	logger.Configure(cfg.LogLevel())

	ctx, stop := cli.NotifyContext(context.Background())
	defer stop()

	return cli.NewApp(cfg, ui.New()).Execute(ctx, args)
}

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil, errors.Is(err, cli.ErrCanceled):
		return
	case errors.Is(err, cli.ErrNoCommand):
		printUsage(rootCmd.Flags())
	case errors.Is(err, cli.ErrUsage):
		ui.NewWithWriter(os.Stderr).Errorf("%v", err)
		printUsage(rootCmd.Flags())
	default:
		logger.Error("An unexpected error occurred", "err", err)
	}
	os.Exit(1)
}
