package cli

import (
	"context"
	"os/signal"

	"github.com/zoro11031/xn/internal/system"
)

// NotifyContext returns a context that is cancelled when the user asks to
// abandon the run set (Ctrl+Z, Ctrl+C or SIGTERM on Unix). The execution
// loop observes the cancellation and kills the in-flight command.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, system.CancelSignals()...)
}
