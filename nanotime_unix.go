//go:build linux || freebsd || openbsd

package precisetime

import "golang.org/x/sys/unix"

// nanotime reads CLOCK_MONOTONIC. The kernel already reports it in
// seconds and nanoseconds, so no calibration is needed.
func nanotime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(&ClockError{Call: "clock_gettime", Err: err})
	}
	return uint64(ts.Nano())
}
