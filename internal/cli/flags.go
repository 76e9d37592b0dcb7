package cli

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/zoro11031/xn/internal/common"
	"github.com/zoro11031/xn/internal/ui"
)

// Flag names that are read directly rather than through config.
const (
	FlagVersion = "version"
	FlagConfig  = "config"
)

// RegisterFlags defines xn's flags on fs. Parsing stops at the first
// positional token so that flags belonging to the command are left alone.
// The count is a string on purpose: see common.ParseCount.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.SetInterspersed(false)
	fs.SortFlags = false

	fs.StringP("count", "n", strconv.Itoa(common.DefaultCount), "Number of times to execute the command (`number`, default: 1)")
	fs.BoolP("silent", "s", false, "Silent mode - suppress output")
	fs.BoolP("help", "h", false, "Show help information")
	fs.BoolP(FlagVersion, "v", false, "Show version information")
	fs.Duration("timeout", 0, "Kill a run that takes longer than `duration` (default: no limit)")
	fs.String("shell", "", "Run the command through `path` instead of the platform shell")
	fs.BoolP("yes", "y", false, "Do not ask for confirmation on large run counts")
	fs.String("log-level", "", "Diagnostic log `level`: debug, info, warn or error")
	fs.String(FlagConfig, "", "Read settings from `file` (default: $XDG_CONFIG_HOME/xn/config.yaml)")
}

// UsageFor builds the help screen from the flags defined on fs.
func UsageFor(fs *pflag.FlagSet) ui.Usage {
	usage := ui.Usage{
		Line:    "xn [options] <command>",
		Example: `xn -n 5 "echo Hello, World!"`,
	}

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		arg, description := pflag.UnquoteUsage(f)
		if f.Value.Type() == "bool" {
			arg = ""
		} else if arg != "" {
			arg = "<" + arg + ">"
		}
		usage.Options = append(usage.Options, ui.UsageOption{
			Short:       f.Shorthand,
			Long:        f.Name,
			Arg:         arg,
			Description: description,
		})
	})
	return usage
}
