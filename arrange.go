package csg

import (
	"fmt"
	"math"
)

// Arrangement generators replicate a solid across regular patterns. The
// input solid is never mutated: every replica is a clone, and the replicas
// are unioned into one output solid.

// GridOptions configures Grid. Counts below 1 are treated as 1, so any
// subset of the three axes forms a 1D, 2D, or 3D lattice. Gap is the
// spacing added between neighboring bounding boxes on every axis; it
// defaults to 0 (touching boxes) and may be negative to force overlap.
type GridOptions struct {
	Cols   int // replicas along X
	Rows   int // replicas along Z
	Levels int // replicas along Y
	Gap    float64
}

// Grid replicates the solid across a regular lattice. The per-axis pitch
// is that axis's bounding-box extent plus the gap.
func Grid(s *Solid, o GridOptions) (*Solid, error) {
	if s == nil {
		return nil, ErrNoSolids
	}
	if !isFinite(o.Gap) {
		panic(fmt.Sprintf("csg: non-finite grid gap %v", o.Gap))
	}
	cols, rows, levels := atLeastOne(o.Cols), atLeastOne(o.Rows), atLeastOne(o.Levels)

	b := s.Bounds()
	pitchX := b.Width + o.Gap
	pitchY := b.Height + o.Gap
	pitchZ := b.Depth + o.Gap

	replicas := make([]*Solid, 0, cols*rows*levels)
	for level := 0; level < levels; level++ {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				replicas = append(replicas, s.Clone().Move(
					float64(col)*pitchX,
					float64(level)*pitchY,
					float64(row)*pitchZ,
				))
			}
		}
	}
	return Union(replicas...)
}

// GridX replicates the solid count times along the X axis.
func GridX(s *Solid, count int, gap float64) (*Solid, error) {
	return Grid(s, GridOptions{Cols: count, Gap: gap})
}

// GridY replicates the solid count times along the Y axis.
func GridY(s *Solid, count int, gap float64) (*Solid, error) {
	return Grid(s, GridOptions{Levels: count, Gap: gap})
}

// GridZ replicates the solid count times along the Z axis.
func GridZ(s *Solid, count int, gap float64) (*Solid, error) {
	return Grid(s, GridOptions{Rows: count, Gap: gap})
}

// CircularOptions configures CircularArray. The angular span defaults to
// a full turn when StartAngle and EndAngle are both zero. FaceOut rotates
// each clone to face outward along its placement angle; leave it false
// for axisymmetric elements that should keep their orientation.
type CircularOptions struct {
	Count      int
	Radius     float64
	StartAngle float64 // degrees
	EndAngle   float64 // degrees
	FaceOut    bool
}

// CircularArray places count clones of the solid evenly across the
// angular span [StartAngle, EndAngle) around the vertical axis, each at
// Radius distance from the center.
func CircularArray(s *Solid, o CircularOptions) (*Solid, error) {
	if s == nil {
		return nil, ErrNoSolids
	}
	if o.Count < 1 {
		panic(fmt.Sprintf("csg: circular array needs at least 1 element, got %d", o.Count))
	}
	if !isFinite(o.Radius) || o.Radius < 0 {
		panic(fmt.Sprintf("csg: invalid circular array radius %v", o.Radius))
	}
	if !isFinite(o.StartAngle) || !isFinite(o.EndAngle) {
		panic(fmt.Sprintf("csg: non-finite circular array angles (%v, %v)", o.StartAngle, o.EndAngle))
	}

	start, end := o.StartAngle, o.EndAngle
	if start == 0 && end == 0 {
		end = fullSweep
	}
	step := (end - start) / float64(o.Count)

	replicas := make([]*Solid, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		angle := start + float64(i)*step
		c := s.Clone()
		if o.FaceOut {
			// Yaw so the clone's +X points along its placement direction.
			c.Rotate(0, -angle, 0)
		}
		rad := radians(angle)
		c.Move(o.Radius*math.Cos(rad), 0, o.Radius*math.Sin(rad))
		replicas = append(replicas, c)
	}
	return Union(replicas...)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
