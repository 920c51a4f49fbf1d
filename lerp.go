package showcase

// Interpolate moves current toward target by a fixed fraction of the
// remaining distance: current + (target-current)*factor. With factor in
// (0, 1] the result never passes target.
func Interpolate(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp restricts v to [lo, hi]. If lo > hi the bounds are swapped.
func Clamp(lo, hi, v float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax].
// The result is not clamped, so values outside the input range extrapolate.
// A degenerate input range maps everything to outMin.
func MapRange(inMin, inMax, outMin, outMax, v float64) float64 {
	span := inMax - inMin
	if span == 0 {
		return outMin
	}
	return outMin + (v-inMin)/span*(outMax-outMin)
}

// SnapZero returns 0 when v is below eps and v otherwise. Page scroll uses it
// to stop sub-pixel drift near the top of the page.
func SnapZero(v, eps float64) float64 {
	if v < eps {
		return 0
	}
	return v
}
