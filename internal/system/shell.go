package system

import (
	"os/exec"
	"runtime"
)

// DefaultShell returns the interpreter used when no override is configured:
// the command processor on Windows, a POSIX shell everywhere else.
func DefaultShell() string {
	return defaultShellFor(runtime.GOOS)
}

func defaultShellFor(goos string) string {
	if goos == "windows" {
		return "cmd"
	}
	return "/bin/sh"
}

// ShellCommand returns the program and arguments that run command through
// shell. An empty shell selects DefaultShell. The command string is passed
// verbatim as a single argument.
func ShellCommand(shell, command string) (string, []string) {
	return shellCommandFor(runtime.GOOS, shell, command)
}

func shellCommandFor(goos, shell, command string) (string, []string) {
	if shell == "" {
		shell = defaultShellFor(goos)
	}
	if goos == "windows" {
		return shell, []string{"/c", command}
	}
	return shell, []string{"-c", command}
}

// CommandExists checks if a command is available in PATH
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
