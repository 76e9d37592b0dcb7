package config

// Configuration key constants to prevent typos and enable autocomplete.
// Each key can be set in the config file, as XN_<KEY> in the environment,
// or through the matching command-line flag.
const (
	// Run configuration
	KeyCount  = "count"
	KeySilent = "silent"

	// Execution configuration
	KeyShell   = "shell"   // Interpreter override (default /bin/sh or cmd)
	KeyTimeout = "timeout" // Per-run timeout, 0 disables

	// Interaction configuration
	KeyConfirmAbove = "confirm_above" // Ask before runs larger than this, 0 disables
	KeyAssumeYes    = "yes"

	// Diagnostics
	KeyLogLevel = "log_level"
)

// Defaults holds the value of every key when nothing overrides it
var Defaults = map[string]any{
	KeyCount:        "1",
	KeySilent:       false,
	KeyShell:        "",
	KeyTimeout:      "0s",
	KeyConfirmAbove: 1000,
	KeyAssumeYes:    false,
	KeyLogLevel:     "",
}

// flagNames maps keys to the command-line flags that can override them.
var flagNames = map[string]string{
	KeyCount:     "count",
	KeySilent:    "silent",
	KeyShell:     "shell",
	KeyTimeout:   "timeout",
	KeyAssumeYes: "yes",
	KeyLogLevel:  "log-level",
}
