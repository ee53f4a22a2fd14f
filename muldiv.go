package precisetime

import "math/bits"

// mulDiv computes (value*numer)/denom without overflowing, as long
// as both numer*denom and the result fit in an int64. That holds for
// counter-to-nanosecond conversions at realistic counter frequencies.
//
// value is split as q*denom + r, so the quotient becomes
// q*numer + r*numer/denom with r < denom bounding the only product
// that is ever formed.
func mulDiv(value, numer, denom int64) int64 {
	q := value / denom
	r := value % denom
	return q*numer + r*numer/denom
}

// timebase is the ratio that converts raw counter ticks into
// nanoseconds: ns = ticks * numer / denom.
type timebase struct {
	numer uint64
	denom uint64
}

// newTimebase returns a timebase for the given ratio. A zero
// denominator is treated as one.
func newTimebase(numer, denom uint64) timebase {
	if denom == 0 {
		denom = 1
	}
	return timebase{numer: numer, denom: denom}
}

// scale converts ticks into nanoseconds. The product is formed in
// 128 bits, so it cannot overflow before the division. The result
// must fit in 64 bits.
func (tb timebase) scale(ticks uint64) uint64 {
	hi, lo := bits.Mul64(ticks, tb.numer)
	ns, _ := bits.Div64(hi, lo, tb.denom)
	return ns
}

// normalizeFrequency returns freq, or 1 if the counter reported a
// non-positive frequency.
func normalizeFrequency(freq int64) int64 {
	if freq <= 0 {
		return 1
	}
	return freq
}
