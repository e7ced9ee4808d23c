package csg

// PathBuilder provides a fluent interface for building segment lists.
// All methods return the builder for chaining.
type PathBuilder struct {
	segments []PathSegment
}

// NewPath starts a new path builder.
func NewPath() *PathBuilder {
	return &PathBuilder{}
}

// Forward appends a straight move of the given length.
func (b *PathBuilder) Forward(length float64) *PathBuilder {
	b.segments = append(b.segments, Straight{Length: length})
	return b
}

// Turn appends an arc of the given radius and sweep angle in degrees.
// Positive angles turn left, negative turn right.
func (b *PathBuilder) Turn(radius, angle float64) *PathBuilder {
	b.segments = append(b.segments, Curve{Radius: radius, Angle: angle})
	return b
}

// Corner appends a sharp in-place turn by angle degrees.
func (b *PathBuilder) Corner(angle float64) *PathBuilder {
	b.segments = append(b.segments, Curve{Angle: angle})
	return b
}

// Segments returns the accumulated segment list.
func (b *PathBuilder) Segments() []PathSegment {
	return b.segments
}

// Trace interprets the accumulated segments into boundary points.
func (b *PathBuilder) Trace() []Point {
	return TracePath(b.segments)
}
