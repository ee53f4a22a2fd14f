//go:build darwin && cgo

package precisetime

/*
#include <mach/mach_time.h>
*/
import "C"

import "fmt"

// machTimebase is the ticks-to-nanoseconds ratio for this boot
// session. It never changes once read.
var machTimebase latch[timebase]

func readMachTimebase() timebase {
	var info C.mach_timebase_info_data_t
	if kr := C.mach_timebase_info(&info); kr != 0 {
		panic(&ClockError{
			Call: "mach_timebase_info",
			Err:  fmt.Errorf("kern_return_t %d", int(kr)),
		})
	}
	return newTimebase(uint64(info.numer), uint64(info.denom))
}

// nanotime reads mach_absolute_time and scales its ticks with the
// cached timebase.
func nanotime() uint64 {
	ticks := uint64(C.mach_absolute_time())
	return machTimebase.Get(readMachTimebase).scale(ticks)
}
