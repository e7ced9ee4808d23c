package csg

import (
	"math"
	"testing"
)

const testEps = 1e-9

func approxPoint(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestTracePathStraightLines(t *testing.T) {
	tests := []struct {
		name     string
		segments []PathSegment
		want     []Point
	}{
		{
			"empty path emits origin only",
			nil,
			[]Point{{}},
		},
		{
			"single forward",
			[]PathSegment{Straight{Length: 10}},
			[]Point{{}, {X: 10}},
		},
		{
			"zero length is a no-op",
			[]PathSegment{Straight{Length: 0}},
			[]Point{{}},
		},
		{
			"negative length is a no-op",
			[]PathSegment{Straight{Length: -5}},
			[]Point{{}},
		},
		{
			"square via sharp corners",
			[]PathSegment{
				Straight{Length: 10},
				Curve{Angle: 90},
				Straight{Length: 10},
				Curve{Angle: 90},
				Straight{Length: 10},
			},
			[]Point{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}},
		},
		{
			"corner emits no point",
			[]PathSegment{Curve{Angle: 45}},
			[]Point{{}},
		},
		{
			"heading persists across corners",
			[]PathSegment{
				Curve{Angle: 90},
				Straight{Length: 4},
			},
			[]Point{{}, {Y: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TracePath(tt.segments)
			if len(got) != len(tt.want) {
				t.Fatalf("TracePath() emitted %d points, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !approxPoint(got[i], tt.want[i], testEps) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTracePathArc(t *testing.T) {
	// Quarter turn left with radius 10 from the origin heading +X must end
	// at (10, 10) heading +Y.
	points := TracePath([]PathSegment{
		Curve{Radius: 10, Angle: 90},
		Straight{Length: 5},
	})

	end := points[len(points)-1]
	if !approxPoint(end, Point{X: 10, Y: 15}, testEps) {
		t.Errorf("end point = %v, want (10, 15)", end)
	}

	// All arc points stay on the circle of radius 10 around (0, 10).
	center := Point{Y: 10}
	for _, p := range points[1 : len(points)-1] {
		if d := p.Distance(center); math.Abs(d-10) > testEps {
			t.Errorf("arc point %v is %v from center, want 10", p, d)
		}
	}
}

func TestTracePathArcRight(t *testing.T) {
	// Quarter turn right mirrors the left turn across the X axis.
	points := TracePath([]PathSegment{Curve{Radius: 10, Angle: -90}})
	end := points[len(points)-1]
	if !approxPoint(end, Point{X: 10, Y: -10}, testEps) {
		t.Errorf("end point = %v, want (10, -10)", end)
	}
}

func TestArcSteps(t *testing.T) {
	tests := []struct {
		angle float64
		want  int
	}{
		{1, 2},
		{15, 2},
		{30, 2},
		{31, 3},
		{90, 6},
		{-90, 6},
		{360, 24},
	}
	for _, tt := range tests {
		if got := arcSteps(tt.angle); got != tt.want {
			t.Errorf("arcSteps(%v) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestTracePathPanics(t *testing.T) {
	tests := []struct {
		name     string
		segments []PathSegment
	}{
		{"NaN straight length", []PathSegment{Straight{Length: math.NaN()}}},
		{"infinite straight length", []PathSegment{Straight{Length: math.Inf(1)}}},
		{"negative curve radius", []PathSegment{Curve{Radius: -1, Angle: 90}}},
		{"NaN curve angle", []PathSegment{Curve{Radius: 1, Angle: math.NaN()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("TracePath(%v) did not panic", tt.segments)
				}
			}()
			TracePath(tt.segments)
		})
	}
}

func TestPathBuilder(t *testing.T) {
	b := NewPath().Forward(10).Corner(90).Forward(10).Turn(2, 90)

	if got := len(b.Segments()); got != 4 {
		t.Fatalf("Segments() has %d entries, want 4", got)
	}
	traced := b.Trace()
	direct := TracePath(b.Segments())
	if len(traced) != len(direct) {
		t.Errorf("Trace() emitted %d points, TracePath %d", len(traced), len(direct))
	}

	// Boundary makes the builder usable as a Profile.
	var _ Profile = b
}
