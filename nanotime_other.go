//go:build !linux && !freebsd && !netbsd && !openbsd && !darwin && !windows

package precisetime

import "time"

// base anchors the Go runtime's monotonic clock reading one
// nanosecond in the past, so the first reading is positive even on
// targets with a coarse timer. time.Since only consults the
// monotonic component, so wall clock steps do not affect the result.
var base = time.Now().Add(-1)

// nanotime is the portable fallback for platforms without a native
// backend.
func nanotime() uint64 {
	return uint64(time.Since(base).Nanoseconds())
}
