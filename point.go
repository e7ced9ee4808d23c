package csg

import "math"

// Point represents a 2D point or vector in a profile's plane.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
// Useful for winding and turn-direction tests.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Rotate returns the point rotated about the origin by angle radians.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// signedArea returns twice the signed area of a closed polygon.
// Positive for counter-clockwise winding.
func signedArea(points []Point) float64 {
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].Cross(points[j])
	}
	return sum
}

// counterClockwise returns the polygon in counter-clockwise order,
// reversing it if necessary. The input slice is not modified.
func counterClockwise(points []Point) []Point {
	out := make([]Point, len(points))
	if signedArea(points) < 0 {
		for i, p := range points {
			out[len(points)-1-i] = p
		}
		return out
	}
	copy(out, points)
	return out
}
