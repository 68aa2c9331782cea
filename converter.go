// Package rotations converts between the three common ways of writing down a 3D rotation: X-Y-Z Euler
// angles, unit quaternions, and axis-angle pairs. Every conversion goes through the Quaternion, so
// Euler angles and axis-angle pairs never convert into each other directly.
//
// All angles going in and out of the package are in degrees. Every function is pure and safe for
// concurrent use.
package rotations

import "math"

// DefaultAxisEpsilon is the sine-of-half-angle below which QuaternionToAxisAngle considers a rotation
// to be the identity and falls back to the X axis. It's coarse (a rotation of about 0.11 degrees);
// use NewConverter with a smaller value, like 1e-6, to keep the real axis of smaller rotations.
const DefaultAxisEpsilon = 1e-3

// Converter converts between rotation representations. The zero value isn't useful; use NewConverter
// or DefaultConverter.
type Converter struct {
	// AxisEpsilon is the threshold for the sine of the half angle under which an axis-angle pair has
	// no meaningful axis, and VecX is returned in its place.
	AxisEpsilon float64
}

// DefaultConverter is the Converter used by the package-level functions.
var DefaultConverter = NewConverter(DefaultAxisEpsilon)

// NewConverter creates a new Converter with the given axis epsilon. A negative or NaN epsilon is treated as 0.
func NewConverter(axisEpsilon float64) Converter {
	if !(axisEpsilon > 0) {
		axisEpsilon = 0
	}
	return Converter{AxisEpsilon: axisEpsilon}
}

// EulerToQuaternion returns the unit Quaternion for the Euler angles given (in degrees). Any finite
// angles are valid.
func (conv Converter) EulerToQuaternion(euler EulerAngles) Quaternion {
	return euler.Quaternion()
}

// QuaternionToEuler returns the Euler angles (in degrees) for the Quaternion given.
// See NewEulerAnglesFromQuaternion for how angles near gimbal lock come out.
func (conv Converter) QuaternionToEuler(q Quaternion) EulerAngles {
	return NewEulerAnglesFromQuaternion(q)
}

// QuaternionToAxisAngle returns the axis and angle (in degrees, between 0 and 360) for the Quaternion
// given. Near-identity rotations return VecX as their axis rather than an error.
func (conv Converter) QuaternionToAxisAngle(q Quaternion) AxisAngle {
	return axisAngleFromQuaternion(q, conv.AxisEpsilon)
}

// AxisAngleToQuaternion returns the unit Quaternion for a rotation of angle degrees around axis. The
// axis doesn't need to be unit length, but it must be longer than 1e-8, or a *DegenerateAxisError
// is returned.
func (conv Converter) AxisAngleToQuaternion(axis Vector, angle float64) (Quaternion, error) {

	if axis.IsZero() || !axis.IsFinite() {
		return Quaternion{}, &DegenerateAxisError{Axis: axis}
	}

	axis = axis.Unit()
	half := ToRadians(angle) / 2
	s := math.Sin(half)

	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}, nil

}

// EulerToAxisAngle converts Euler angles to an axis-angle pair by way of a Quaternion.
func (conv Converter) EulerToAxisAngle(euler EulerAngles) AxisAngle {
	return conv.QuaternionToAxisAngle(conv.EulerToQuaternion(euler))
}

// AxisAngleToEuler converts an axis-angle pair to Euler angles by way of a Quaternion.
func (conv Converter) AxisAngleToEuler(axis Vector, angle float64) (EulerAngles, error) {
	q, err := conv.AxisAngleToQuaternion(axis, angle)
	if err != nil {
		return EulerAngles{}, err
	}
	return conv.QuaternionToEuler(q), nil
}

// EulerToQuaternion converts using DefaultConverter.
func EulerToQuaternion(euler EulerAngles) Quaternion {
	return DefaultConverter.EulerToQuaternion(euler)
}

// QuaternionToEuler converts using DefaultConverter.
func QuaternionToEuler(q Quaternion) EulerAngles {
	return DefaultConverter.QuaternionToEuler(q)
}

// QuaternionToAxisAngle converts using DefaultConverter.
func QuaternionToAxisAngle(q Quaternion) AxisAngle {
	return DefaultConverter.QuaternionToAxisAngle(q)
}

// AxisAngleToQuaternion converts using DefaultConverter.
func AxisAngleToQuaternion(axis Vector, angle float64) (Quaternion, error) {
	return DefaultConverter.AxisAngleToQuaternion(axis, angle)
}

// EulerToAxisAngle converts using DefaultConverter.
func EulerToAxisAngle(euler EulerAngles) AxisAngle {
	return DefaultConverter.EulerToAxisAngle(euler)
}

// AxisAngleToEuler converts using DefaultConverter.
func AxisAngleToEuler(axis Vector, angle float64) (EulerAngles, error) {
	return DefaultConverter.AxisAngleToEuler(axis, angle)
}
