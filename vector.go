package rotations

import (
	"fmt"
	"math"
)

// VecX represents a unit vector along the global X axis.
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector along the global Y axis.
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector along the global Z axis (upwards, in the rendered views).
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used here for rotation axes and for the marker geometry fed to renderers.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector pointing the other way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector. It's computed with scaling, so components past 1e154 don't overflow it.
func (vec Vector) Magnitude() float64 {
	scale, rest := scaledNorm(vec.X, vec.Y, vec.Z, 0)
	return scale * rest
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A Vector shorter than 1e-8 is returned unmodified; use IsZero() first where that matters.
func (vec Vector) Unit() Vector {
	scale, rest := scaledNorm(vec.X, vec.Y, vec.Z, 0)
	if scale*rest < zeroLength || math.IsInf(scale, 0) {
		return vec
	}
	// Dividing by scale first keeps the huge and the tiny in range.
	vec = vec.Divide(scale)
	return vec.Divide(rest)
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {
	return vec.EqualsTolerance(other, 1e-8)
}

// EqualsTolerance returns true if each component of the two Vectors differs by no more than tolerance.
func (vec Vector) EqualsTolerance(other Vector, tolerance float64) bool {
	return math.Abs(vec.X-other.X) <= tolerance && math.Abs(vec.Y-other.Y) <= tolerance && math.Abs(vec.Z-other.Z) <= tolerance
}

// IsZero returns true if the Vector is too short to be normalized.
func (vec Vector) IsZero() bool {
	return vec.Magnitude() < zeroLength
}

// IsFinite returns false if any component is NaN or infinite.
func (vec Vector) IsFinite() bool {
	return isFinite(vec.X) && isFinite(vec.Y) && isFinite(vec.Z)
}

func (vec Vector) String() string {
	return fmt.Sprintf("{%.4f, %.4f, %.4f}", vec.X, vec.Y, vec.Z)
}
