package csg

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Extrude builds a closed solid by extruding a 2D profile straight up.
// The profile's (x, y) plane maps to the world (X, Z) plane and the
// extrusion spans Y from 0 to height. The boundary is closed implicitly;
// top and bottom caps are triangulated so non-convex profiles work.
//
// Building from the same boundary description twice yields geometrically
// identical but independently owned solids.
//
// Invalid input (non-positive or non-finite height, fewer than three
// distinct boundary points) panics.
func Extrude(height float64, profile Profile, opts ...Option) *Solid {
	if !isFinite(height) || height <= 0 {
		panic(fmt.Sprintf("csg: invalid extrusion height %v", height))
	}
	o := applyOptions(opts)
	boundary := cleanBoundary(profile.Boundary())

	caps, err := triangulate(boundary)
	if err != nil {
		panic(err.Error())
	}

	m := NewMesh(len(boundary)*2 + len(caps)*2)

	// Side walls: one quad per boundary edge, bottom ring to top ring.
	// With a counter-clockwise boundary this winding faces outward.
	for i := range boundary {
		j := (i + 1) % len(boundary)
		bi := liftPoint(boundary[i], 0)
		bj := liftPoint(boundary[j], 0)
		ti := liftPoint(boundary[i], height)
		tj := liftPoint(boundary[j], height)
		m.AddTriangle(bi, ti, bj)
		m.AddTriangle(bj, ti, tj)
	}

	// Caps: counter-clockwise 2D triangles face -Y once lifted, which is
	// outward for the bottom; the top cap is reversed to face +Y.
	for _, t := range caps {
		m.AddTriangle(liftPoint(t[0], 0), liftPoint(t[1], 0), liftPoint(t[2], 0))
		m.AddTriangle(liftPoint(t[0], height), liftPoint(t[2], height), liftPoint(t[1], height))
	}

	Logger().Debug("extruded profile",
		"points", len(boundary), "height", height, "triangles", m.TriangleCount())

	s := newSolid(m)
	s.color = o.color
	return s
}

// liftPoint maps a profile point into 3D at the given height.
func liftPoint(p Point, y float64) r3.Vec {
	return r3.Vec{X: p.X, Y: y, Z: p.Y}
}
