package precisetime

// ClockError reports that a native clock call failed. A working
// clock is a precondition for the process, so backends panic with a
// *ClockError instead of returning it.
type ClockError struct {
	Call string // name of the native call, e.g. "clock_gettime"
	Err  error  // error reported by the operating system
}

func (e *ClockError) Error() string {
	if e.Err == nil {
		return "precisetime: " + e.Call + " failed"
	}
	return "precisetime: " + e.Call + ": " + e.Err.Error()
}

// Unwrap returns the underlying operating system error.
func (e *ClockError) Unwrap() error {
	return e.Err
}
