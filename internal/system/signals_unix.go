//go:build unix

package system

import (
	"os"

	"golang.org/x/sys/unix"
)

// CancelSignals are the signals that abandon a run set. SIGTSTP (Ctrl+Z) is
// the dedicated stop request; interrupt and terminate are included because
// the child runs in its own process group and would otherwise be orphaned.
func CancelSignals() []os.Signal {
	return []os.Signal{unix.SIGTSTP, os.Interrupt, unix.SIGTERM}
}
