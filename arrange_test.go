package csg

import (
	"errors"
	"math"
	"testing"
)

func TestGridXExtent(t *testing.T) {
	tests := []struct {
		name  string
		count int
		gap   float64
		want  float64 // total width for a 10-unit cube
	}{
		{"three touching", 3, 0, 30},
		{"three with gap", 3, 2, 34},
		{"single", 1, 5, 10},
		{"overlapping", 2, -4, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GridX(Cube(10, 10, 10), tt.count, tt.gap)
			if err != nil {
				t.Fatalf("GridX() error = %v", err)
			}
			if got := g.Bounds().Width; math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Width = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridLattice(t *testing.T) {
	g, err := Grid(Cube(4, 4, 4), GridOptions{Cols: 2, Rows: 3, Levels: 2, Gap: 1})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	b := g.Bounds()
	if math.Abs(b.Width-9) > 1e-6 { // 2*4 + 1
		t.Errorf("Width = %v, want 9", b.Width)
	}
	if math.Abs(b.Height-9) > 1e-6 { // 2*4 + 1
		t.Errorf("Height = %v, want 9", b.Height)
	}
	if math.Abs(b.Depth-14) > 1e-6 { // 3*4 + 2*1
		t.Errorf("Depth = %v, want 14", b.Depth)
	}
}

func TestGridDefaultsToSingle(t *testing.T) {
	s := Cube(3, 3, 3)
	g, err := Grid(s, GridOptions{})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	gb, sb := g.Bounds(), s.Bounds()
	if !approxVec(gb.Min, sb.Min, testEps) || !approxVec(gb.Max, sb.Max, testEps) {
		t.Errorf("empty options changed bounds: %+v, want %+v", gb, sb)
	}
}

func TestGridDoesNotMutateInput(t *testing.T) {
	s := Cube(5, 5, 5)
	before := s.Bounds()
	if _, err := GridX(s, 4, 1); err != nil {
		t.Fatalf("GridX() error = %v", err)
	}
	after := s.Bounds()
	if !approxVec(before.Min, after.Min, testEps) || !approxVec(before.Max, after.Max, testEps) {
		t.Errorf("input bounds changed: %+v -> %+v", before, after)
	}
}

func TestGridNilSolid(t *testing.T) {
	if _, err := Grid(nil, GridOptions{Cols: 2}); !errors.Is(err, ErrNoSolids) {
		t.Errorf("Grid(nil) error = %v, want ErrNoSolids", err)
	}
}

func TestCircularArrayBounds(t *testing.T) {
	// Twelve small spheres on a 15-radius ring: the cloud spans about
	// [-18, 18] across X and Z and [-3, 3] across Y.
	ring, err := CircularArray(Sphere(3), CircularOptions{Count: 12, Radius: 15})
	if err != nil {
		t.Fatalf("CircularArray() error = %v", err)
	}
	b := ring.Bounds()
	if math.Abs(b.Max.X-18) > 0.2 || math.Abs(b.Min.X+18) > 0.2 {
		t.Errorf("X bounds = [%v, %v], want about [-18, 18]", b.Min.X, b.Max.X)
	}
	if math.Abs(b.Max.Y-3) > 0.2 || math.Abs(b.Min.Y+3) > 0.2 {
		t.Errorf("Y bounds = [%v, %v], want about [-3, 3]", b.Min.Y, b.Max.Y)
	}
}

func TestCircularArrayPartialSpan(t *testing.T) {
	// A quarter arc starting at 0° places everything at non-negative Z.
	arc, err := CircularArray(Cube(1, 1, 1), CircularOptions{
		Count:      4,
		Radius:     10,
		StartAngle: 0,
		EndAngle:   90,
	})
	if err != nil {
		t.Fatalf("CircularArray() error = %v", err)
	}
	if got := arc.Bounds().Min.Z; got < -1 {
		t.Errorf("min Z = %v, want placements within the first quadrant", got)
	}

	// The span is half open: the last element sits short of the end angle.
	if got := arc.Bounds().Max.Z; got > 10*math.Sin(radians(67.5))+1 {
		t.Errorf("max Z = %v, elements should stop short of 90°", got)
	}
}

func TestCircularArrayFaceOut(t *testing.T) {
	// A long thin cube facing out at 90° placement points along +Z, so
	// its length shows up in the Z extent rather than X.
	arc, err := CircularArray(Cube(6, 1, 1), CircularOptions{
		Count:      1,
		Radius:     10,
		StartAngle: 90,
		EndAngle:   91,
		FaceOut:    true,
	})
	if err != nil {
		t.Fatalf("CircularArray() error = %v", err)
	}
	b := arc.Bounds()
	if math.Abs(b.Depth-6) > 1e-6 || math.Abs(b.Width-1) > 1e-6 {
		t.Errorf("extents = (%v, %v), want length along Z: (1, 6)", b.Width, b.Depth)
	}
}

func TestCircularArrayPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"zero count", func() { CircularArray(Cube(1, 1, 1), CircularOptions{Count: 0, Radius: 5}) }},
		{"negative radius", func() { CircularArray(Cube(1, 1, 1), CircularOptions{Count: 3, Radius: -1}) }},
		{"NaN angle", func() {
			CircularArray(Cube(1, 1, 1), CircularOptions{Count: 3, Radius: 5, StartAngle: math.NaN()})
		}},
		{"grid NaN gap", func() { Grid(Cube(1, 1, 1), GridOptions{Cols: 2, Gap: math.NaN()}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.f()
		})
	}
}

func TestCircularArrayNilSolid(t *testing.T) {
	if _, err := CircularArray(nil, CircularOptions{Count: 3, Radius: 5}); !errors.Is(err, ErrNoSolids) {
		t.Errorf("CircularArray(nil) error = %v, want ErrNoSolids", err)
	}
}
