package csg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// fullSweepSteps is the radial tessellation of a complete 360° revolution.
// Partial sweeps use proportionally fewer steps, so density per degree is
// constant.
const fullSweepSteps = 48

// radialSteps returns the step count for a sweep of the given magnitude:
// coarse near small partial sweeps, fine near a full turn.
func radialSteps(sweep float64) int {
	n := int(math.Ceil(sweep / 360 * fullSweepSteps))
	if n < 3 {
		n = 3
	}
	return n
}

// Revolve builds a closed solid by sweeping a 2D profile around the Y
// axis. The profile's x coordinate is the radius from the axis and must be
// non-negative for every point; its y coordinate is height along the axis.
//
// The sweep angle defaults to a full turn and can be reduced with
// WithAngle. Partial sweeps are closed by flat end caps at the start and
// end angle, so the result is a closed solid for any sweep in (0, 360].
//
// Negative radii panic: revolving them would self-intersect the shell.
func Revolve(profile Profile, opts ...Option) *Solid {
	o := applyOptions(opts)
	boundary := cleanBoundary(profile.Boundary())
	for _, p := range boundary {
		if p.X < 0 {
			panic(fmt.Sprintf("csg: revolve profile radius must be >= 0, got %v", p.X))
		}
	}

	sweep := o.angle
	if sweep > fullSweep {
		sweep = fullSweep
	}
	m := revolveBoundary(boundary, 0, sweep, radialSteps(sweep))

	Logger().Debug("revolved profile",
		"points", len(boundary), "sweep", sweep, "triangles", m.TriangleCount())

	s := newSolid(m)
	s.color = o.color
	return s
}

// revolveBoundary sweeps a counter-clockwise (radius, height) boundary
// around the Y axis from startDeg through sweepDeg degrees in the given
// number of steps. Sweeps short of a full turn are closed with flat end
// caps. Callers guarantee a cleaned boundary with non-negative radii.
func revolveBoundary(boundary []Point, startDeg, sweepDeg float64, steps int) *Mesh {
	full := sweepDeg >= fullSweep

	// Precompute ring directions. For a full sweep the last ring must be
	// the first ring exactly, not a floating-point neighbor of it.
	dirs := make([]Point, steps+1)
	for j := 0; j <= steps; j++ {
		angle := radians(startDeg + sweepDeg*float64(j)/float64(steps))
		dirs[j] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	if full {
		dirs[steps] = dirs[0]
	}

	at := func(p Point, j int) r3.Vec {
		return r3.Vec{X: p.X * dirs[j].X, Y: p.Y, Z: p.X * dirs[j].Y}
	}

	m := NewMesh(len(boundary) * steps * 2)

	// Shell: one quad per boundary edge per angular step. Edges on the
	// axis (radius 0) collapse and are dropped by AddTriangle.
	for i := range boundary {
		next := (i + 1) % len(boundary)
		for j := 0; j < steps; j++ {
			a := at(boundary[i], j)
			b := at(boundary[next], j)
			c := at(boundary[next], j+1)
			d := at(boundary[i], j+1)
			m.AddQuad(a, b, c, d)
		}
	}

	if !full {
		caps, err := triangulate(boundary)
		if err != nil {
			panic(err.Error())
		}
		// A counter-clockwise profile triangle lifted into the ring plane
		// faces the direction of increasing angle: outward for the end
		// cap, inward for the start cap, which is therefore reversed.
		for _, t := range caps {
			m.AddTriangle(at(t[0], steps), at(t[1], steps), at(t[2], steps))
			m.AddTriangle(at(t[0], 0), at(t[2], 0), at(t[1], 0))
		}
	}
	return m
}
