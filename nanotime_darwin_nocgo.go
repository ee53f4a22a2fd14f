//go:build darwin && !cgo

package precisetime

import "golang.org/x/sys/unix"

// nanotime reads CLOCK_UPTIME_RAW, which is mach_absolute_time
// already converted to nanoseconds by libc. It is used when cgo is
// unavailable and the mach calls cannot be reached directly.
func nanotime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_UPTIME_RAW, &ts); err != nil {
		panic(&ClockError{Call: "clock_gettime", Err: err})
	}
	return uint64(ts.Nano())
}
