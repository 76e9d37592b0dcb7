//go:build !unix

package system

import "os/exec"

func setProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup kills the command processor; cmd /c children share its console.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
