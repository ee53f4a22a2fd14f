//go:build netbsd

package precisetime

import "golang.org/x/sys/unix"

// clockMonotonic is CLOCK_MONOTONIC from NetBSD's <time.h>, which
// golang.org/x/sys/unix does not export for netbsd.
const clockMonotonic = 3

// nanotime reads CLOCK_MONOTONIC. No calibration is needed.
func nanotime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockMonotonic, &ts); err != nil {
		panic(&ClockError{Call: "clock_gettime", Err: err})
	}
	return uint64(ts.Nano())
}
