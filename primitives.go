package csg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Canonical primitives. All shapes are centered at the local origin and
// validate their dimensions as finite and strictly positive. Round and
// polygonal primitives accept WithAngle for a partial sweep; see the wedge
// policy in wedge.go.

// sizeSegments returns the radial tessellation for a round shape of the
// given radius. It is a pure function of the size, so identical inputs
// always produce identical buffers — required for caching and for
// reproducible builds.
func sizeSegments(radius float64) int {
	n := int(math.Ceil(math.Sqrt(radius) * 12))
	if n < 16 {
		return 16
	}
	if n > 64 {
		return 64
	}
	return n
}

// mustDimension panics unless v is finite and strictly positive.
func mustDimension(name string, v float64) {
	if !isFinite(v) || v <= 0 {
		panic(fmt.Sprintf("csg: %s must be finite and positive, got %v", name, v))
	}
}

// Cube builds an axis-aligned box centered at the origin.
func Cube(width, height, depth float64, opts ...Option) *Solid {
	mustDimension("cube width", width)
	mustDimension("cube height", height)
	mustDimension("cube depth", depth)
	o := applyOptions(opts)

	x, y, z := width/2, height/2, depth/2
	m := NewMesh(12)
	// One outward-wound quad per face.
	m.AddQuad(v(x, -y, -z), v(x, y, -z), v(x, y, z), v(x, -y, z))     // +X
	m.AddQuad(v(-x, -y, -z), v(-x, -y, z), v(-x, y, z), v(-x, y, -z)) // -X
	m.AddQuad(v(-x, y, -z), v(-x, y, z), v(x, y, z), v(x, y, -z))     // +Y
	m.AddQuad(v(-x, -y, -z), v(x, -y, -z), v(x, -y, z), v(-x, -y, z)) // -Y
	m.AddQuad(v(-x, -y, z), v(x, -y, z), v(x, y, z), v(-x, y, z))     // +Z
	m.AddQuad(v(-x, -y, -z), v(-x, y, -z), v(x, y, -z), v(x, -y, -z)) // -Z

	s := newSolid(m)
	s.color = o.color
	return s
}

// Cylinder builds a cylinder of the given radius and height centered at
// the origin, axis along Y. WithTopRadius tapers it; WithAngle sweeps a
// partial cylinder.
func Cylinder(radius, height float64, opts ...Option) *Solid {
	mustDimension("cylinder radius", radius)
	mustDimension("cylinder height", height)
	o := applyOptions(opts)

	top := radius
	if o.hasTop {
		top = o.topRadius
	}
	m := lathePrimitive(taperProfile(radius, top, height), sizeSegments(math.Max(radius, top)), o.angle)
	s := newSolid(m)
	s.color = o.color
	return s
}

// Cone builds a cone of the given base radius and height centered at the
// origin, apex up. Sugar for a cylinder with top radius zero.
func Cone(radius, height float64, opts ...Option) *Solid {
	mustDimension("cone radius", radius)
	mustDimension("cone height", height)
	return Cylinder(radius, height, append(opts, WithTopRadius(0))...)
}

// Sphere builds a sphere of the given radius centered at the origin.
func Sphere(radius float64, opts ...Option) *Solid {
	mustDimension("sphere radius", radius)
	o := applyOptions(opts)

	segs := sizeSegments(radius)
	stacks := segs / 2
	if stacks < 8 {
		stacks = 8
	}

	// Right semicircle from the south to the north pole; the closing edge
	// runs down the axis and collapses during revolution.
	profile := make([]Point, stacks+1)
	for i := 0; i <= stacks; i++ {
		phi := -math.Pi/2 + math.Pi*float64(i)/float64(stacks)
		sin, cos := math.Sincos(phi)
		profile[i] = Point{X: radius * cos, Y: radius * sin}
	}
	profile[0].X = 0
	profile[stacks].X = 0

	m := lathePrimitive(profile, segs, o.angle)
	s := newSolid(m)
	s.color = o.color
	return s
}

// Prism builds a regular n-gon prism of the given circumradius and height
// centered at the origin, axis along Y. WithTopRadius tapers it.
func Prism(sides int, radius, height float64, opts ...Option) *Solid {
	if sides < 3 {
		panic(fmt.Sprintf("csg: prism needs at least 3 sides, got %d", sides))
	}
	mustDimension("prism radius", radius)
	mustDimension("prism height", height)
	o := applyOptions(opts)

	top := radius
	if o.hasTop {
		top = o.topRadius
	}
	m := lathePrimitive(taperProfile(radius, top, height), sides, o.angle)
	s := newSolid(m)
	s.color = o.color
	return s
}

// taperProfile is the lathe profile of a (possibly tapered) cylinder:
// a quad from the axis out to the bottom radius, up to the top radius,
// and back to the axis. A zero top radius degenerates into a triangle.
func taperProfile(bottom, top, height float64) []Point {
	h := height / 2
	return []Point{
		{X: 0, Y: -h},
		{X: bottom, Y: -h},
		{X: top, Y: h},
		{X: 0, Y: h},
	}
}

// lathePrimitive revolves a full 360° profile in the given number of
// radial steps, then applies the partial-angle wedge policy for sweeps
// short of a full turn.
func lathePrimitive(profile []Point, steps int, angle float64) *Mesh {
	m := revolveBoundary(cleanBoundary(profile), 0, fullSweep, steps)
	return applySweepPolicy(m, angle)
}

func v(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}
