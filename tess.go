package csg

import (
	"fmt"

	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// snapDistance is how far a tessellated cap vertex may sit from an input
// boundary point and still be snapped back onto it. The tessellator works
// in float32; snapping restores exact coincidence with the float64 side
// walls so caps stay welded to them.
const snapDistance = 1e-4

// triangulate converts a closed 2D boundary into triangles using the
// libtess2 sweep-line tessellator. The boundary may be non-convex and is
// closed implicitly. Output triangles are normalized to counter-clockwise
// winding.
func triangulate(boundary []Point) ([][3]Point, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("csg: boundary needs at least 3 points, got %d", len(boundary))
	}

	contour := make(libtess2.Contour, len(boundary))
	for i, p := range boundary {
		contour[i] = libtess2.Vertex{X: float32(p.X), Y: float32(p.Y)}
	}

	elements, vertices, err := libtess2.Tesselate([]libtess2.Contour{contour}, libtess2.WindingRuleOdd)
	if err != nil {
		return nil, fmt.Errorf("csg: tessellation failed: %w", err)
	}

	points := make([]Point, len(vertices))
	for i, v := range vertices {
		points[i] = snapToBoundary(Point{X: float64(v.X), Y: float64(v.Y)}, boundary)
	}

	tris := make([][3]Point, 0, len(elements)/3)
	for i := 0; i+2 < len(elements); i += 3 {
		a, b, c := points[elements[i]], points[elements[i+1]], points[elements[i+2]]
		// Orient counter-clockwise so callers can rely on the winding.
		if b.Sub(a).Cross(c.Sub(a)) < 0 {
			b, c = c, b
		}
		tris = append(tris, [3]Point{a, b, c})
	}
	return tris, nil
}

// snapToBoundary replaces p with the nearest original boundary point when
// one lies within snapDistance, undoing the tessellator's float32 rounding.
func snapToBoundary(p Point, boundary []Point) Point {
	for _, q := range boundary {
		if p.Approx(q, snapDistance) {
			return q
		}
	}
	return p
}
