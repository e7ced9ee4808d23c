package csg

import "gonum.org/v1/gonum/spatial/r3"

// Bounds is a world-space axis-aligned bounding box. It is derived from a
// solid's geometry and pose on demand, never stored.
type Bounds struct {
	Min, Max, Center r3.Vec
	Width            float64 // extent along X
	Height           float64 // extent along Y
	Depth            float64 // extent along Z
}

func boundsBetween(min, max r3.Vec) Bounds {
	return Bounds{
		Min:    min,
		Max:    max,
		Center: r3.Scale(0.5, r3.Add(min, max)),
		Width:  max.X - min.X,
		Height: max.Y - min.Y,
		Depth:  max.Z - min.Z,
	}
}

// Bounds computes the solid's world-space bounding box: the raw geometry's
// local box mapped through the current pose. Transforms that only touched
// the pose are reflected here even though the geometry buffer is untouched.
//
// The box of a rotated solid is the box of its rotated local box, which may
// be larger than the tight bounds of the rotated geometry.
func (s *Solid) Bounds() Bounds {
	min, max := s.geom.BoundingBox()
	m := s.poseMatrix()

	corners := [8]r3.Vec{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
	}

	wmin := m.Apply(corners[0])
	wmax := wmin
	for _, c := range corners[1:] {
		w := m.Apply(c)
		wmin = r3.Vec{X: minf(wmin.X, w.X), Y: minf(wmin.Y, w.Y), Z: minf(wmin.Z, w.Z)}
		wmax = r3.Vec{X: maxf(wmax.X, w.X), Y: maxf(wmax.Y, w.Y), Z: maxf(wmax.Z, w.Z)}
	}
	return boundsBetween(wmin, wmax)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
