package imaging

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

var (
	// ErrSingular is returned when a matrix has no inverse.
	ErrSingular = errors.New("singular transform")
	// ErrInvalidAxis is returned by Reflect for an axis other than
	// "horizontal" or "vertical".
	ErrInvalidAxis = errors.New("invalid reflection axis")
)

// Matrix is a 3x3 homogeneous transform in row-major order:
//
//  m[0]  m[1]  m[2]
//  m[3]  m[4]  m[5]
//  m[6]  m[7]  m[8]
//
// Matrices built in this package always have [0 0 1] as their bottom row.
type Matrix f64.Mat3

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation Matrix
//
//  cos(angle)    sin(angle)    0
//  -sin(angle)   cos(angle)    0
//  0             0             1
//
func rotation(rad float64) Matrix {
	m := Identity()
	m[0] = math.Cos(rad)
	m[1] = math.Sin(rad)

	m[3] = math.Sin(rad) * -1
	m[4] = math.Cos(rad)

	return m
}

// Scale Matrix:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
func scaling(sx, sy float64) Matrix {
	m := Identity()
	m[0] = sx
	m[4] = sy
	return m
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// aroundCenter pivots base on the center of a width x height image,
// i.e. T(center) * base * T(-center).
// The center uses integer division.
func aroundCenter(base Matrix, width, height int) Matrix {
	cx := float64(width / 2)
	cy := float64(height / 2)
	toOrigin := translation(-cx, -cy)
	back := translation(cx, cy)
	return Multiply(Multiply(back, base), toOrigin)
}

// Rotate returns a matrix that rotates by the given angle (degrees)
// around the center of a width x height image.
func Rotate(degrees float64, width, height int) Matrix {
	return aroundCenter(rotation(degrees*math.Pi/180), width, height)
}

// Scale returns a matrix that scales by fx, fy around the center of a
// width x height image.
//
// Zero factors are accepted here. The resulting matrix is singular and
// will be rejected by Apply.
func Scale(fx, fy float64, width, height int) Matrix {
	return aroundCenter(scaling(fx, fy), width, height)
}

// Reflect returns a matrix that mirrors a width x height image on its
// center.
//
// "horizontal" negates y (top and bottom swap),
// "vertical" negates x (left and right swap).
func Reflect(axis string, width, height int) (Matrix, error) {
	var base Matrix
	switch axis {
	case "horizontal":
		base = scaling(1, -1)
	case "vertical":
		base = scaling(-1, 1)
	default:
		return Matrix{}, fmt.Errorf("%w: %q", ErrInvalidAxis, axis)
	}
	return aroundCenter(base, width, height), nil
}

// Translate returns a matrix that moves content by dx, dy.
func Translate(dx, dy float64) Matrix {
	return translation(dx, dy)
}

// Multiply combines two transforms. The result applies b first, then a.
func Multiply(a, b Matrix) Matrix {
	var m Matrix

	m[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	m[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	m[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	m[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	m[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	m[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	m[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return m
}

// Determinant of the full 3x3 matrix.
func (m Matrix) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Invert returns the inverse matrix.
// ErrSingular is returned if the determinant is zero or not finite.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, ErrSingular
	}

	// adjugate (transposed cofactors) divided by the determinant
	var inv Matrix
	inv[0] = (m[4]*m[8] - m[5]*m[7]) / det
	inv[1] = (m[2]*m[7] - m[1]*m[8]) / det
	inv[2] = (m[1]*m[5] - m[2]*m[4]) / det

	inv[3] = (m[5]*m[6] - m[3]*m[8]) / det
	inv[4] = (m[0]*m[8] - m[2]*m[6]) / det
	inv[5] = (m[2]*m[3] - m[0]*m[5]) / det

	inv[6] = (m[3]*m[7] - m[4]*m[6]) / det
	inv[7] = (m[1]*m[6] - m[0]*m[7]) / det
	inv[8] = (m[0]*m[4] - m[1]*m[3]) / det

	return inv, nil
}

// Transform applies the matrix to the point x,y.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}

// IsAffine reports whether the bottom row is [0 0 1].
func (m Matrix) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

func (m Matrix) String() string {
	return fmt.Sprintf("[[%g %g %g] [%g %g %g] [%g %g %g]]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
