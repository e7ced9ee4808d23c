package csg

import (
	"fmt"
	"math"
)

// PathSegment is one move of a profile path. It is a closed sum type:
// the only implementations are Straight and Curve.
type PathSegment interface {
	// apply advances the cursor, appending any boundary points produced.
	apply(c *pathCursor)
}

// Straight moves the cursor Length units along the current heading and
// emits the endpoint. A non-positive length is a no-op: it emits no point
// and leaves cursor and heading unchanged.
type Straight struct {
	Length float64
}

// Curve turns the path. With Radius 0 it is a sharp corner: the heading
// rotates by Angle in place and no point is emitted. With Radius > 0 it
// traces an arc of sweep Angle around a center offset Radius perpendicular
// to the heading; the sign of Angle selects the turn side (positive = left).
// By the arc's end the heading has rotated by exactly Angle.
type Curve struct {
	Radius float64
	Angle  float64
}

// arcStepDegrees is the largest angular span covered by one arc segment.
// Smaller values trace smoother arcs at the price of more geometry.
const arcStepDegrees = 15

// arcSteps returns the number of line segments used to tessellate an arc
// of the given sweep. At least 2, growing with the sweep's magnitude, so
// curvature stays visually smooth regardless of radius.
func arcSteps(angle float64) int {
	n := int(math.Ceil(math.Abs(angle) / arcStepDegrees))
	if n < 2 {
		n = 2
	}
	return n
}

// pathCursor is the interpreter state: position, heading, and the boundary
// points emitted so far. Heading 0 faces +X; degrees, counter-clockwise.
type pathCursor struct {
	pos     Point
	heading float64
	points  []Point
}

func (c *pathCursor) headingVector() Point {
	return Point{X: 1}.Rotate(radians(c.heading))
}

func (s Straight) apply(c *pathCursor) {
	if !isFinite(s.Length) {
		panic(fmt.Sprintf("csg: non-finite straight segment length %v", s.Length))
	}
	if s.Length <= 0 {
		return
	}
	c.pos = c.pos.Add(c.headingVector().Mul(s.Length))
	c.points = append(c.points, c.pos)
}

func (s Curve) apply(c *pathCursor) {
	if !isFinite(s.Radius) || !isFinite(s.Angle) {
		panic(fmt.Sprintf("csg: non-finite curve segment (radius %v, angle %v)", s.Radius, s.Angle))
	}
	if s.Radius < 0 {
		panic(fmt.Sprintf("csg: negative curve radius %v", s.Radius))
	}
	if s.Angle == 0 {
		return
	}
	if s.Radius == 0 {
		// Sharp corner: rotate in place.
		c.heading += s.Angle
		return
	}

	// The arc center sits Radius units perpendicular to the heading, on the
	// side selected by the sign of Angle (left for positive).
	side := 1.0
	if s.Angle < 0 {
		side = -1
	}
	center := c.pos.Add(c.headingVector().Rotate(side * math.Pi / 2).Mul(s.Radius))
	arm := c.pos.Sub(center)

	steps := arcSteps(s.Angle)
	for i := 1; i <= steps; i++ {
		sweep := radians(s.Angle) * float64(i) / float64(steps)
		c.points = append(c.points, center.Add(arm.Rotate(sweep)))
	}
	c.pos = c.points[len(c.points)-1]
	c.heading += s.Angle
}

// TracePath interprets an ordered segment list into the boundary points of
// a 2D profile. The cursor starts at the origin facing +X. The trace does
// not append a closing segment back to the origin; closing the boundary is
// the consuming builder's responsibility.
//
// The origin itself is emitted as the first boundary point.
func TracePath(segments []PathSegment) []Point {
	c := pathCursor{points: []Point{{}}}
	for _, s := range segments {
		s.apply(&c)
	}
	return c.points
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
