package csg

import "fmt"

// Option configures a primitive or profile-builder construction.
// Use functional options to customize shapes:
//
//	// A quarter cylinder in steel blue.
//	s := csg.Cylinder(8, 20, csg.WithAngle(90), csg.WithNamedColor("steelblue"))
type Option func(*buildOptions)

// buildOptions holds optional configuration for shape construction.
type buildOptions struct {
	color     RGBA
	angle     float64 // sweep in degrees; >= 360 means full
	topRadius float64
	hasTop    bool
}

// defaultBuildOptions returns the options used when none are given:
// full sweep, default color, no distinct top radius.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		color: DefaultColor,
		angle: fullSweep,
	}
}

const fullSweep = 360

// WithColor sets the solid's color tag.
func WithColor(c RGBA) Option {
	return func(o *buildOptions) {
		o.color = c
	}
}

// WithNamedColor sets the color tag from an SVG 1.1 color name.
// Unknown names panic.
func WithNamedColor(name string) Option {
	return func(o *buildOptions) {
		c, err := Named(name)
		if err != nil {
			panic(err.Error())
		}
		o.color = c
	}
}

// WithAngle sets the sweep angle in degrees for round and polygonal
// primitives and for Revolve. Angles in (0, 360) produce a partial sweep
// closed by flat radial faces; 360 and above keep the full shape.
// Zero, negative, or non-finite angles panic.
func WithAngle(deg float64) Option {
	return func(o *buildOptions) {
		if !isFinite(deg) || deg <= 0 {
			panic(fmt.Sprintf("csg: invalid sweep angle %v", deg))
		}
		o.angle = deg
	}
}

// WithTopRadius gives a cylinder or prism a distinct top radius, producing
// a tapered shape. Negative or non-finite radii panic; zero produces a
// cone-like taper.
func WithTopRadius(r float64) Option {
	return func(o *buildOptions) {
		if !isFinite(r) || r < 0 {
			panic(fmt.Sprintf("csg: invalid top radius %v", r))
		}
		o.topRadius = r
		o.hasTop = true
	}
}

func applyOptions(opts []Option) buildOptions {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
