package csg

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMeshAddTriangleDropsDegenerate(t *testing.T) {
	m := NewMesh(4)
	m.AddTriangle(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})     // valid
	m.AddTriangle(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 2})     // collinear
	m.AddTriangle(r3.Vec{X: 1}, r3.Vec{X: 1}, r3.Vec{Y: 1}) // repeated vertex

	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
}

func TestMeshAddQuadCollapsedEdge(t *testing.T) {
	m := NewMesh(2)
	// d == a collapses the second triangle of the quad.
	a := r3.Vec{}
	m.AddQuad(a, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}, a)
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
}

func TestMeshCloneIsIndependent(t *testing.T) {
	m := NewMesh(1)
	m.AddTriangle(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})

	c := m.Clone()
	c.Transform(Translation(r3.Vec{X: 100}))

	if m.Vertices[0] != 0 {
		t.Errorf("transforming a clone moved the original: %v", m.Vertices[0])
	}
}

func TestMeshBoundingBox(t *testing.T) {
	m := NewMesh(1)
	m.AddTriangle(r3.Vec{X: -1, Y: 2, Z: 3}, r3.Vec{X: 4, Y: -5, Z: 6}, r3.Vec{X: 0, Y: 0, Z: -7})

	min, max := m.BoundingBox()
	if !approxVec(min, r3.Vec{X: -1, Y: -5, Z: -7}, testEps) {
		t.Errorf("min = %v", min)
	}
	if !approxVec(max, r3.Vec{X: 4, Y: 2, Z: 6}, testEps) {
		t.Errorf("max = %v", max)
	}

	empty := NewMesh(0)
	emin, emax := empty.BoundingBox()
	if emin != (r3.Vec{}) || emax != (r3.Vec{}) {
		t.Errorf("empty mesh bounds = %v, %v, want zero vectors", emin, emax)
	}
}

func TestMeshFlipOrientation(t *testing.T) {
	m := NewMesh(1)
	a, b, c := r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}
	m.AddTriangle(a, b, c)
	m.FlipOrientation()

	ga, gb, gc := m.Triangle(0)
	if ga != a || gb != c || gc != b {
		t.Errorf("flipped triangle = %v %v %v, want %v %v %v", ga, gb, gc, a, c, b)
	}
}
