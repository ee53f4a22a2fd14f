package precisetime

// nowfn is a package-level variable that provides the current clock
// reading in nanoseconds. Using a variable instead of directly
// calling the platform backend allows tests to script the clock. In
// production, this defaults to nanotime.
var nowfn = nanotime
