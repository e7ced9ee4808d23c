package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix represents a 3D affine transformation.
// It uses a 3x4 matrix in row-major order:
//
//	| A  B  C  D |
//	| E  F  G  H |
//	| I  J  K  L |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C*z + D
//	y' = E*x + F*y + G*z + H
//	z' = I*x + J*y + K*z + L
type Matrix struct {
	A, B, C, D float64
	E, F, G, H float64
	I, J, K, L float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, F: 1, K: 1,
	}
}

// Translation creates a translation matrix.
func Translation(v r3.Vec) Matrix {
	return Matrix{
		A: 1, D: v.X,
		F: 1, H: v.Y,
		K: 1, L: v.Z,
	}
}

// Scaling creates a per-axis scaling matrix.
func Scaling(v r3.Vec) Matrix {
	return Matrix{
		A: v.X,
		F: v.Y,
		K: v.Z,
	}
}

// RotationX creates a rotation matrix about the X axis (angle in degrees).
func RotationX(deg float64) Matrix {
	sin, cos := math.Sincos(radians(deg))
	return Matrix{
		A: 1,
		F: cos, G: -sin,
		J: sin, K: cos,
	}
}

// RotationY creates a rotation matrix about the Y axis (angle in degrees).
func RotationY(deg float64) Matrix {
	sin, cos := math.Sincos(radians(deg))
	return Matrix{
		A: cos, C: sin,
		F: 1,
		I: -sin, K: cos,
	}
}

// RotationZ creates a rotation matrix about the Z axis (angle in degrees).
func RotationZ(deg float64) Matrix {
	sin, cos := math.Sincos(radians(deg))
	return Matrix{
		A: cos, B: -sin,
		E: sin, F: cos,
		K: 1,
	}
}

// Mul multiplies two matrices (m * other), composing other first.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.E + m.C*other.I,
		B: m.A*other.B + m.B*other.F + m.C*other.J,
		C: m.A*other.C + m.B*other.G + m.C*other.K,
		D: m.A*other.D + m.B*other.H + m.C*other.L + m.D,
		E: m.E*other.A + m.F*other.E + m.G*other.I,
		F: m.E*other.B + m.F*other.F + m.G*other.J,
		G: m.E*other.C + m.F*other.G + m.G*other.K,
		H: m.E*other.D + m.F*other.H + m.G*other.L + m.H,
		I: m.I*other.A + m.J*other.E + m.K*other.I,
		J: m.I*other.B + m.J*other.F + m.K*other.J,
		K: m.I*other.C + m.J*other.G + m.K*other.K,
		L: m.I*other.D + m.J*other.H + m.K*other.L + m.L,
	}
}

// Apply transforms a vector.
func (m Matrix) Apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z + m.D,
		Y: m.E*v.X + m.F*v.Y + m.G*v.Z + m.H,
		Z: m.I*v.X + m.J*v.Y + m.K*v.Z + m.L,
	}
}

// Det returns the determinant of the linear part.
// Negative determinants mirror geometry and flip triangle winding.
func (m Matrix) Det() float64 {
	return m.A*(m.F*m.K-m.G*m.J) -
		m.B*(m.E*m.K-m.G*m.I) +
		m.C*(m.E*m.J-m.F*m.I)
}
