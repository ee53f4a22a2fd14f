// Package precisetime provides a monotonic high-resolution time
// source. It reports elapsed time since an unspecified reference
// instant in nanoseconds, milliseconds and fractional seconds, using
// whichever native clock the build target offers: clock_gettime on
// POSIX systems, mach_absolute_time on Apple platforms and the
// performance counter on Windows.
//
// Readings are only comparable within a single process. They are not
// wall-clock time and do not survive a restart.
package precisetime
