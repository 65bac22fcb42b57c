package common

import "math"

// EaseInOutCubic maps t with a cubic ease-in-out curve: slow start, fast middle,
// slow end. The input is not clamped; callers pass values in [0, 1].
//
// Parameters:
//   - t: the linear progress
//
// Returns:
//   - float64: the eased progress
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 interpolates each component of a and b.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// Clamp bounds v into [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v >= lo {
		return v
	}
	return lo
}

// Clamp01 bounds v into [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Ratio divides num by den, yielding 0 when den is zero.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Stagger delays a shared progress value for one item of a group.
// The item starts moving once eased passes delay and finishes together with
// the group. A delay of 1 or more has no room left to move in, so the item is
// reported as finished.
//
// Parameters:
//   - eased: the group progress in [0, 1]
//   - delay: the item's start offset in [0, 1)
//
// Returns:
//   - float64: the item progress in [0, 1]
func Stagger(eased, delay float64) float64 {
	if delay >= 1 {
		return 1
	}
	return Clamp01((eased - delay) / (1 - delay))
}

// FadeInOut returns an opacity ramp over local progress: up from 0 across the
// first band, and, when fadeOut is set, back down across the last band.
//
// Parameters:
//   - local: local progress in [0, 1]
//   - band: the fraction of the range used by each ramp
//   - fadeOut: whether to ramp down at the end
//
// Returns:
//   - float64: the opacity in [0, 1]
func FadeInOut(local, band float64, fadeOut bool) float64 {
	if band <= 0 {
		return 1
	}
	if local < band {
		return Clamp01(local / band)
	}
	if fadeOut && local > 1-band {
		return Clamp01((1 - local) / band)
	}
	return 1
}

// Threshold returns how far v has progressed past start over span, clamped to
// [0, 1]. It is the shape of every "appear after X" ramp in the scenes.
func Threshold(v, start, span float64) float64 {
	if span <= 0 {
		if v > start {
			return 1
		}
		return 0
	}
	return math.Min(1, math.Max(0, (v-start)/span))
}
