package rotations

import (
	"fmt"
	"math"
)

// gimbalThreshold is how close the X-Y-Z matrix's m13 term (the sine of the Y rotation) may get to
// ±1 before the X and Z rotations are considered coupled.
const gimbalThreshold = 0.9999999

// EulerAngles represents a rotation as three angles in degrees, applied intrinsically in X, then Y,
// then Z order (the same rotation as rotating around global Z, then global Y, then global X).
// Values aren't range-normalized; conversions out of a Quaternion return X and Z in (-180, 180]
// and Y in [-90, 90].
type EulerAngles struct {
	X, Y, Z float64 // Rotation around each axis, in degrees
}

// NewEulerAngles creates a new EulerAngles out of the given rotations, in degrees.
func NewEulerAngles(x, y, z float64) EulerAngles {
	return EulerAngles{X: x, Y: y, Z: z}
}

// Radians returns the three rotations converted to radians.
func (euler EulerAngles) Radians() (x, y, z float64) {
	return ToRadians(euler.X), ToRadians(euler.Y), ToRadians(euler.Z)
}

// Quaternion returns the rotation as a unit Quaternion, composed as qx * qy * qz out of the per-axis half-angle Quaternions.
func (euler EulerAngles) Quaternion() Quaternion {

	x, y, z := euler.Radians()

	c1, s1 := math.Cos(x/2), math.Sin(x/2)
	c2, s2 := math.Cos(y/2), math.Sin(y/2)
	c3, s3 := math.Cos(z/2), math.Sin(z/2)

	return Quaternion{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 + s1*s2*c3,
		W: c1*c2*c3 - s1*s2*s3,
	}

}

// Equals returns true if each angle differs from the other's by no more than tolerance degrees.
// Angles aren't wrapped; use Quaternion().Equivalent() to compare the rotations themselves.
func (euler EulerAngles) Equals(other EulerAngles, tolerance float64) bool {
	return math.Abs(euler.X-other.X) <= tolerance && math.Abs(euler.Y-other.Y) <= tolerance && math.Abs(euler.Z-other.Z) <= tolerance
}

// IsFinite returns false if any angle is NaN or infinite.
func (euler EulerAngles) IsFinite() bool {
	return isFinite(euler.X) && isFinite(euler.Y) && isFinite(euler.Z)
}

func (euler EulerAngles) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", euler.X, euler.Y, euler.Z)
}

// NewEulerAnglesFromQuaternion extracts X-Y-Z Euler angles (in degrees) out of the Quaternion given,
// normalizing it first if necessary.
//
// When the Y rotation approaches ±90 degrees, the X and Z rotations act around the same axis and
// only their combination is recoverable; in that case the whole combined rotation is returned in X,
// and Z is 0. The result then differs from whatever angles produced the Quaternion, but describes the
// same rotation.
func NewEulerAnglesFromQuaternion(q Quaternion) EulerAngles {

	m := NewMatrix3FromQuaternion(q)

	m11, m12, m13 := m[0][0], m[0][1], m[0][2]
	m22, m23 := m[1][1], m[1][2]
	m32, m33 := m[2][1], m[2][2]

	var x, y, z float64

	y = math.Asin(clamp(m13, -1, 1))

	if math.Abs(m13) < gimbalThreshold {
		x = math.Atan2(-m23, m33)
		z = math.Atan2(-m12, m11)
	} else {
		x = math.Atan2(m32, m22)
		z = 0
	}

	return EulerAngles{X: ToDegrees(x), Y: ToDegrees(y), Z: ToDegrees(z)}

}
