package rotations

import "math"

// zeroLength is the magnitude below which an axis or quaternion can't be normalized.
const zeroLength = 1e-8

// ToRadians is a helper function to easily convert degrees to radians (which is what the math inside the converter uses).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// scaledNorm returns the largest absolute component as scale, and the norm of the components divided by it as
// rest, so the full norm is scale * rest. Nothing large enough to overflow (or small enough to underflow) is squared.
func scaledNorm(a, b, c, d float64) (scale, rest float64) {

	scale = math.Max(math.Max(math.Abs(a), math.Abs(b)), math.Max(math.Abs(c), math.Abs(d)))

	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return scale, 1
	}

	a, b, c, d = a/scale, b/scale, c/scale, d/scale
	return scale, math.Sqrt(a*a + b*b + c*c + d*d)

}
