package rotations

import (
	"fmt"
	"math"
)

// AxisAngle represents a rotation in degrees around a given 3D axis. Axis is unit-length when the
// AxisAngle comes out of NewAxisAngle or one of the conversion functions.
type AxisAngle struct {
	Axis  Vector  // 3 dimensional axis for rotating
	Angle float64 // Rotation in degrees
}

// NewAxisAngle creates a new AxisAngle out of the given axis and angle (in degrees), normalizing the axis.
// If the axis is too short to normalize, a *DegenerateAxisError is returned.
func NewAxisAngle(axis Vector, angle float64) (AxisAngle, error) {

	if axis.IsZero() || !axis.IsFinite() {
		return AxisAngle{}, &DegenerateAxisError{Axis: axis}
	}

	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}, nil

}

// Quaternion returns the rotation as a unit Quaternion. If the axis is zero-length, a *DegenerateAxisError is returned.
func (aa AxisAngle) Quaternion() (Quaternion, error) {
	return AxisAngleToQuaternion(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 0, 1] (+Z, or "Up") and an Angle of 90, axisAngle.RotateVector(Vector{1, 0, 0}) would return Vector{0, 1, 0}.
func (aa AxisAngle) RotateVector(vec Vector) (Vector, error) {
	q, err := aa.Quaternion()
	if err != nil {
		return Vector{}, err
	}
	return q.RotateVector(vec), nil
}

// Equals returns true if the axes match within tolerance and the angles within tolerance degrees.
func (aa AxisAngle) Equals(other AxisAngle, tolerance float64) bool {
	return aa.Axis.EqualsTolerance(other.Axis, tolerance) && math.Abs(aa.Angle-other.Angle) <= tolerance
}

func (aa AxisAngle) String() string {
	return fmt.Sprintf("{%s, %.2f}", aa.Axis, aa.Angle)
}

// axisAngleFromQuaternion extracts the axis and angle out of a (normalized) Quaternion. If the sine of
// the half angle is no larger than epsilon, the rotation is too close to identity for the axis to be
// meaningful, and VecX is used.
func axisAngleFromQuaternion(q Quaternion, epsilon float64) AxisAngle {

	q = q.Normalized()

	// Clamping both keeps acos and sqrt from returning NaN when w drifts just past ±1.
	w := clamp(q.W, -1, 1)

	angle := 2 * math.Acos(w)
	sinHalfAngle := math.Sqrt(math.Max(0, 1-w*w))

	axis := VecX

	if sinHalfAngle > epsilon {
		axis = NewVector(q.X, q.Y, q.Z).Divide(sinHalfAngle)
	}

	return AxisAngle{Axis: axis, Angle: ToDegrees(angle)}

}
