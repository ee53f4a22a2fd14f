//go:build windows

package precisetime

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                      = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")
)

// qpcFrequency is the performance counter frequency in ticks per
// second. It is fixed at boot and read once.
var qpcFrequency latch[int64]

func readQPCFrequency() int64 {
	var freq int64
	if ok, _, err := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq))); ok == 0 {
		panic(&ClockError{Call: "QueryPerformanceFrequency", Err: err})
	}
	return normalizeFrequency(freq)
}

// nanotime reads QueryPerformanceCounter directly. The runtime's
// monotonic clock on Windows is backed by interrupt time, which does
// not have nanosecond resolution.
func nanotime() uint64 {
	var ticks int64
	if ok, _, err := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&ticks))); ok == 0 {
		panic(&ClockError{Call: "QueryPerformanceCounter", Err: err})
	}
	return uint64(mulDiv(ticks, nanosPerSecond, *qpcFrequency.Get(readQPCFrequency)))
}
