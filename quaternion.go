package rotations

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// NormTolerance is how far a Quaternion's norm may drift from 1 before conversions out of it
// renormalize it.
const NormTolerance = 1e-6

// Quaternion represents a rotation as a four-component number; X, Y and Z are the imaginary
// (vector) part and W is the real (scalar) part. Rotations are expected to be unit-length; the
// conversion functions renormalize anything further than NormTolerance from unit length.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion out of the given components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns the Quaternion representing no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func quaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// Magnitude returns the norm of the Quaternion.
func (q Quaternion) Magnitude() float64 {
	scale, rest := scaledNorm(q.X, q.Y, q.Z, q.W)
	return scale * rest
}

// Normalized returns a unit-length copy of the Quaternion. A Quaternion already within
// NormTolerance of unit length is returned untouched, and a Quaternion with a norm under 1e-8
// (which has no meaningful direction) returns the identity.
func (q Quaternion) Normalized() Quaternion {

	scale, rest := scaledNorm(q.X, q.Y, q.Z, q.W)
	m := scale * rest

	if m < zeroLength {
		return NewQuaternionIdentity()
	}

	if math.Abs(m-1) <= NormTolerance {
		return q
	}

	// Scaled down by the largest component first; at extremes scale * rest alone would overflow.
	q.X, q.Y, q.Z, q.W = q.X/scale/rest, q.Y/scale/rest, q.Z/scale/rest, q.W/scale/rest
	return q

}

// Conjugate returns the Quaternion with its vector part negated; for a unit Quaternion this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return quaternionFromNumber(quat.Conj(q.number()))
}

// Mult returns the Hamilton product q * other. Applied to a vector, the result rotates by other first, then by q.
func (q Quaternion) Mult(other Quaternion) Quaternion {
	return quaternionFromNumber(quat.Mul(q.number(), other.number()))
}

// RotateVector rotates the given Vector by the (normalized) Quaternion.
func (q Quaternion) RotateVector(vec Vector) Vector {
	n := q.Normalized().number()
	v := quat.Number{Imag: vec.X, Jmag: vec.Y, Kmag: vec.Z}
	r := quat.Mul(quat.Mul(n, v), quat.Conj(n))
	return NewVector(r.Imag, r.Jmag, r.Kmag)
}

// Equivalent returns true if the two Quaternions describe the same rotation within the tolerance
// given, treating q and -q as the same rotation.
func (q Quaternion) Equivalent(other Quaternion, tolerance float64) bool {
	return q.Equals(other, tolerance) || q.Equals(other.negated(), tolerance)
}

// Equals returns true if each component of the two Quaternions differs by no more than tolerance.
func (q Quaternion) Equals(other Quaternion, tolerance float64) bool {
	return math.Abs(q.X-other.X) <= tolerance &&
		math.Abs(q.Y-other.Y) <= tolerance &&
		math.Abs(q.Z-other.Z) <= tolerance &&
		math.Abs(q.W-other.W) <= tolerance
}

func (q Quaternion) negated() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// IsFinite returns false if any component is NaN or infinite.
func (q Quaternion) IsFinite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}

// Floats returns the components in X, Y, Z, W order (the order glTF stores rotations in).
func (q Quaternion) Floats() [4]float64 {
	return [4]float64{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("{%.4f, %.4f, %.4f, %.4f}", q.X, q.Y, q.Z, q.W)
}
