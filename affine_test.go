package csg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func approxVec(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   r3.Vec
		want r3.Vec
	}{
		{
			"identity",
			Identity(),
			r3.Vec{X: 1, Y: 2, Z: 3},
			r3.Vec{X: 1, Y: 2, Z: 3},
		},
		{
			"translation",
			Translation(r3.Vec{X: 10, Y: -5, Z: 2}),
			r3.Vec{X: 1, Y: 1, Z: 1},
			r3.Vec{X: 11, Y: -4, Z: 3},
		},
		{
			"scaling",
			Scaling(r3.Vec{X: 2, Y: 3, Z: 4}),
			r3.Vec{X: 1, Y: 1, Z: 1},
			r3.Vec{X: 2, Y: 3, Z: 4},
		},
		{
			"rotate X 90 sends Y to Z",
			RotationX(90),
			r3.Vec{Y: 1},
			r3.Vec{Z: 1},
		},
		{
			"rotate Y 90 sends Z to X",
			RotationY(90),
			r3.Vec{Z: 1},
			r3.Vec{X: 1},
		},
		{
			"rotate Z 90 sends X to Y",
			RotationZ(90),
			r3.Vec{X: 1},
			r3.Vec{Y: 1},
		},
		{
			"rotate Y -90 sends X to Z",
			RotationY(-90),
			r3.Vec{X: 1},
			r3.Vec{Z: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.in)
			if !approxVec(got, tt.want, testEps) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// Mul composes right to left: (T * R).Apply rotates first.
	m := Translation(r3.Vec{X: 10}).Mul(RotationZ(90))
	got := m.Apply(r3.Vec{X: 1})
	want := r3.Vec{X: 10, Y: 1}
	if !approxVec(got, want, testEps) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestMatrixDet(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"translation preserves volume", Translation(r3.Vec{X: 7, Y: 8, Z: 9}), 1},
		{"rotation preserves volume", RotationY(37), 1},
		{"uniform scale", Scaling(r3.Vec{X: 2, Y: 2, Z: 2}), 8},
		{"mirror X", Scaling(r3.Vec{X: -1, Y: 1, Z: 1}), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Det(); math.Abs(got-tt.want) > testEps {
				t.Errorf("Det() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeshTransformMirrorFlipsWinding(t *testing.T) {
	m := NewMesh(1)
	m.AddTriangle(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})

	// Mirroring across X negates the face normal direction unless the
	// winding is also flipped; Transform must keep the normal's Z sign.
	normalZ := func(m *Mesh) float64 {
		a, b, c := m.Triangle(0)
		return r3.Cross(r3.Sub(b, a), r3.Sub(c, a)).Z
	}
	before := normalZ(m)
	m.Transform(Scaling(r3.Vec{X: -1, Y: 1, Z: 1}))
	after := normalZ(m)

	if before*after <= 0 {
		t.Errorf("normal Z sign changed after mirror: before %v, after %v", before, after)
	}
}
