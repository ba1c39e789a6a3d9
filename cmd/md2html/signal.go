package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context cancelled on the first shutdown signal so
// in-flight pages finish and pending ones are skipped. Call stop() to release
// resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
