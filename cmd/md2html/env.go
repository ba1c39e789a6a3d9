package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"
)

// Help text width bounds.
const (
	defaultWidth = 80
	minWidth     = 40
	maxWidth     = 100
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	Getenv    func(string) string
	TermWidth func() int // columns available for help output
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Getenv:    os.Getenv,
		TermWidth: func() int { return terminalWidth(os.Stdout, os.Getenv) },
	}
}

// width returns the help width clamped to [minWidth, maxWidth].
func (e *Environment) width() int {
	w := defaultWidth
	if e.TermWidth != nil {
		w = e.TermWidth()
	}
	return min(max(w, minWidth), maxWidth)
}

// terminalWidth reports the width of f when it is a terminal, then falls
// back to $COLUMNS and finally defaultWidth.
func terminalWidth(f *os.File, getenv func(string) string) int {
	fd := int(f.Fd()) // #nosec G115 -- file descriptors fit in int
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
