package csg

import "fmt"

// Profile is a closed 2D boundary description consumed by Extrude and
// Revolve. The boundary is closed implicitly: the last point joins the
// first. Implementations: Points, Path, Emitter, and PathBuilder.
type Profile interface {
	Boundary() []Point
}

// Points is an explicit boundary point list.
type Points []Point

// Boundary returns a copy of the point list.
func (p Points) Boundary() []Point {
	return append([]Point(nil), p...)
}

// Path is a boundary described as a path-segment list, interpreted by
// TracePath.
type Path []PathSegment

// Boundary traces the segments into boundary points.
func (p Path) Boundary() []Point {
	return TracePath(p)
}

// Emitter is a boundary described by an arbitrary point-emitting callback.
type Emitter func(emit func(Point))

// Boundary collects the emitted points.
func (e Emitter) Boundary() []Point {
	var points []Point
	e(func(p Point) {
		points = append(points, p)
	})
	return points
}

// Boundary makes PathBuilder a Profile, so a built path can feed Extrude
// or Revolve directly.
func (b *PathBuilder) Boundary() []Point {
	return b.Trace()
}

// cleanBoundary validates and normalizes a profile boundary: consecutive
// duplicates and a closing point equal to the first are dropped, and the
// result is wound counter-clockwise. Panics when fewer than three distinct
// points remain.
func cleanBoundary(points []Point) []Point {
	const weld = 1e-9
	cleaned := make([]Point, 0, len(points))
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			panic(fmt.Sprintf("csg: non-finite boundary point (%v, %v)", p.X, p.Y))
		}
		if len(cleaned) > 0 && p.Approx(cleaned[len(cleaned)-1], weld) {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) > 1 && cleaned[len(cleaned)-1].Approx(cleaned[0], weld) {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		panic(fmt.Sprintf("csg: boundary needs at least 3 distinct points, got %d", len(cleaned)))
	}
	return counterClockwise(cleaned)
}
