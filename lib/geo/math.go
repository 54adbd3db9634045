package geo

import "math"

// Radix is the grid element sizes snap to when they grow to fit text.
const Radix = 10.

// RoundTo rounds v to the nearest multiple of radix, halves away from zero.
func RoundTo(v, radix float64) float64 {
	if radix == 0 {
		return v
	}
	return math.Round(v/radix) * radix
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func Min(a, b float64) float64 {
	return math.Min(a, b)
}

func Max(a, b float64) float64 {
	return math.Max(a, b)
}

