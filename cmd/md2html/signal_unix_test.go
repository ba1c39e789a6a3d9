//go:build !windows

package main

import (
	"syscall"
	"testing"
	"time"
)

// Not parallel: the signal is delivered to the whole test process.
func TestNotifyContext_SIGTERM(t *testing.T) {
	ctx, stop := notifyContext(t.Context())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled after SIGTERM")
	}
}
