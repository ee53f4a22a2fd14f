package precisetime

const (
	nanosPerSecond      = 1_000_000_000
	nanosPerMillisecond = 1_000_000
)

// Nanos returns the current value of the high-resolution monotonic
// clock in nanoseconds since an unspecified, platform-chosen
// reference instant. Two calls ordered in real time on the same
// goroutine never observe a decrease.
//
// Nanos panics with a *ClockError if the native clock call fails.
func Nanos() uint64 {
	return nowfn()
}

// Seconds returns the current value of the high-resolution monotonic
// clock in seconds since an unspecified reference instant. Readings
// above 2^53 nanoseconds (about 104 days) no longer fit a float64
// exactly, so the result loses nanosecond-level precision.
func Seconds() float64 {
	return float64(nowfn()) / nanosPerSecond
}

// Millis returns the current value of the high-resolution monotonic
// clock in whole milliseconds since an unspecified reference instant.
// The fractional millisecond is truncated, not rounded.
func Millis() uint64 {
	return nowfn() / nanosPerMillisecond
}
