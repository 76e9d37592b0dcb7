//go:build !unix

package system

import "os"

// CancelSignals are the signals that abandon a run set.
func CancelSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
