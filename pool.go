package md2html

import "runtime"

// Worker pool sizing bounds.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent conversions.
	MaxPoolSize = 64
)

// ResolvePoolSize determines the number of concurrent conversions.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for
// containers). The result is clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(max(n, MinPoolSize), MaxPoolSize)
}
