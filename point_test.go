package csg

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 4}
	b := Point{X: 1, Y: -2}

	if got := a.Add(b); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != (Point{X: 6, Y: 8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Distance(Point{X: 3, Y: 0}); got != 4 {
		t.Errorf("Distance = %v, want 4", got)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		rad  float64
		want Point
	}{
		{"quarter turn", Point{X: 1}, math.Pi / 2, Point{Y: 1}},
		{"half turn", Point{X: 1}, math.Pi, Point{X: -1}},
		{"negative quarter", Point{X: 1}, -math.Pi / 2, Point{Y: -1}},
		{"zero", Point{X: 2, Y: 3}, 0, Point{X: 2, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.rad)
			if !approxPoint(got, tt.want, testEps) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.rad, got, tt.want)
			}
		})
	}
}

func TestSignedArea(t *testing.T) {
	ccw := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	cw := []Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}

	// signedArea reports twice the enclosed area.
	if got := signedArea(ccw); math.Abs(got-8) > testEps {
		t.Errorf("signedArea(ccw square) = %v, want 8", got)
	}
	if got := signedArea(cw); math.Abs(got+8) > testEps {
		t.Errorf("signedArea(cw square) = %v, want -8", got)
	}
}

func TestCounterClockwise(t *testing.T) {
	cw := []Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}
	fixed := counterClockwise(cw)
	if got := signedArea(fixed); got <= 0 {
		t.Errorf("signedArea after counterClockwise = %v, want positive", got)
	}

	ccw := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	kept := counterClockwise(ccw)
	for i := range ccw {
		if kept[i] != ccw[i] {
			t.Errorf("counterClockwise reordered an already-ccw boundary at %d", i)
		}
	}
}

func TestCleanBoundary(t *testing.T) {
	// Duplicates and an explicit closing point collapse away.
	points := []Point{
		{X: 0, Y: 0},
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 2, Y: 2},
		{X: 0, Y: 0},
	}
	got := cleanBoundary(points)
	if len(got) != 3 {
		t.Fatalf("cleanBoundary() kept %d points, want 3: %v", len(got), got)
	}
	if signedArea(got) <= 0 {
		t.Errorf("cleanBoundary() returned non-ccw boundary: %v", got)
	}
}

func TestCleanBoundaryPanics(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"empty", nil},
		{"two points", []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"all duplicates", []Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}},
		{"NaN point", []Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}, {X: 2, Y: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			cleanBoundary(tt.points)
		})
	}
}
