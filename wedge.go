package csg

import (
	"fmt"
	"math"
)

// Partial-angle (wedge) policy: a round or polygonal primitive swept
// through less than a full turn is produced by building the complete 360°
// shape and subtracting a wedge solid covering the excluded angular span.
// The subtraction introduces two flat radial faces while keeping the
// result closed.

// wedgePadding keeps the wedge strictly larger than the shape it cuts so
// the boolean never operates on touching coincident faces.
const wedgePadding = 1.0

// applySweepPolicy reduces a full-turn mesh to the sweep [0°, angle).
// Angles of 360° and above return the mesh untouched: there is nothing to
// cut, and a zero-size wedge would be degenerate.
func applySweepPolicy(m *Mesh, angle float64) *Mesh {
	if angle >= fullSweep {
		return m
	}

	out, err := activeEvaluator.Boolean(OpSubtract, m, wedgeMesh(m, angle))
	if err != nil {
		panic(fmt.Sprintf("csg: wedge subtraction failed: %v", err))
	}
	Logger().Debug("applied sweep wedge",
		"angle", angle, "triangles", out.TriangleCount())
	return out
}

// wedgeMesh builds the wedge covering the angular span [angle, 360°),
// sized to enclose the shape's full radial and vertical extent with
// padding on every side.
func wedgeMesh(shape *Mesh, angle float64) *Mesh {
	min, max := shape.BoundingBox()
	rx := math.Max(math.Abs(min.X), math.Abs(max.X))
	rz := math.Max(math.Abs(min.Z), math.Abs(max.Z))
	reach := math.Hypot(rx, rz) + wedgePadding

	profile := []Point{
		{X: 0, Y: min.Y - wedgePadding},
		{X: reach, Y: min.Y - wedgePadding},
		{X: reach, Y: max.Y + wedgePadding},
		{X: 0, Y: max.Y + wedgePadding},
	}
	span := fullSweep - angle
	return revolveBoundary(profile, angle, span, radialSteps(span))
}
