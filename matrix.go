package rotations

import (
	"math"
	"strconv"
)

// Matrix3 represents a 3x3 rotation matrix, stored row-major (matrix[row][column]). Column
// vectors are assumed, so MultVec computes matrix * vec.
type Matrix3 [3][3]float64

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrix3FromQuaternion returns the rotation matrix for the Quaternion given. The Quaternion is normalized first.
func NewMatrix3FromQuaternion(q Quaternion) Matrix3 {

	q = q.Normalized()

	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Matrix3{
		{1 - (yy + zz), xy - wz, xz + wy},
		{xy + wz, 1 - (xx + zz), yz - wx},
		{xz - wy, yz + wx, 1 - (xx + yy)},
	}

}

// MultVec returns the Vector rotated by the matrix.
func (matrix Matrix3) MultVec(vec Vector) Vector {
	return Vector{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z,
	}
}

// Mult returns matrix * other.
func (matrix Matrix3) Mult(other Matrix3) Matrix3 {

	var out Matrix3

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = matrix[row][0]*other[0][col] + matrix[row][1]*other[1][col] + matrix[row][2]*other[2][col]
		}
	}

	return out

}

// Transposed returns a transposed copy of the matrix; for a pure rotation this is also its inverse.
func (matrix Matrix3) Transposed() Matrix3 {
	for row := 0; row < 3; row++ {
		for col := row + 1; col < 3; col++ {
			matrix[row][col], matrix[col][row] = matrix[col][row], matrix[row][col]
		}
	}
	return matrix
}

// Column returns the given column as a Vector. For a rotation matrix, columns 0, 1 and 2 are the rotated X, Y and Z axes.
func (matrix Matrix3) Column(columnIndex int) Vector {
	return NewVector(matrix[0][columnIndex], matrix[1][columnIndex], matrix[2][columnIndex])
}

// Equals returns true if the matrix equals the other matrix within 1e-6 in every element.
func (matrix Matrix3) Equals(other Matrix3) bool {
	eps := 1e-6
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if math.Abs(matrix[row][col]-other[row][col]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix3) IsIdentity() bool {
	return matrix.Equals(NewMatrix3())
}

// Determinant returns the determinant of the matrix; a proper rotation has a determinant of 1.
func (matrix Matrix3) Determinant() float64 {
	m := matrix
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (matrix Matrix3) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ",\t"
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
