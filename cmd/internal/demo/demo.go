// Package demo holds the built-in part catalog shared by the csgdemo and
// csgview commands. The parts are chosen to exercise the whole
// construction surface: path-built profiles, extrusion, revolution,
// partial sweeps, ordered merges, and the two arrangement generators.
package demo

import (
	csg "github.com/SegmentController/csg-builder-sub000"
)

// Register installs the demo catalog into the registry.
func Register(reg *csg.Registry) error {
	demos := map[string]csg.Producer{
		"flange":    flange,
		"bracket":   bracket,
		"vase":      vase,
		"wedge-hub": wedgeHub,
		"heat-sink": heatSink,
		"ball-grid": ballGrid,
	}
	for name, p := range demos {
		if err := reg.Register(name, p); err != nil {
			return err
		}
	}
	return nil
}

// flange is a disc with a center bore and a bolt circle of six holes.
func flange() (*csg.Solid, error) {
	disc := csg.Cylinder(30, 6, csg.WithNamedColor("steelblue"))
	bore := csg.Cylinder(8, 10)

	holes, err := csg.CircularArray(csg.Cylinder(3, 10), csg.CircularOptions{
		Count:  6,
		Radius: 22,
	})
	if err != nil {
		return nil, err
	}
	return csg.Merge(disc, bore.AsNegative(), holes.AsNegative())
}

// bracket extrudes an L-shaped path profile with a rounded inner corner,
// then cuts two mounting holes.
func bracket() (*csg.Solid, error) {
	profile := csg.NewPath().
		Forward(40).
		Corner(90).
		Forward(10).
		Corner(90).
		Forward(25).
		Turn(5, -90).
		Forward(25).
		Corner(90).
		Forward(10)

	body := csg.Extrude(12, profile, csg.WithNamedColor("darkorange"))

	// One hole through each leg, drilled across the leg's thickness.
	hole := csg.Cylinder(3, 20)
	h1 := hole.Clone().Rotate(90, 0, 0).At(32, 6, 5)
	h2 := hole.Clone().Rotate(0, 0, 90).At(5, 6, 32)
	return csg.Merge(body, h1.AsNegative(), h2.AsNegative())
}

// vase revolves a goblet path profile around the vertical axis: a solid
// foot, a straight wall curving into a narrow neck, and a lipped rim. The
// implicit closing edge back to the origin forms the inner cavity wall.
func vase() (*csg.Solid, error) {
	profile := csg.NewPath().
		Forward(16).
		Corner(90).
		Forward(3).
		Corner(90).
		Forward(4).
		Corner(-90).
		Forward(20).
		Turn(6, 90).
		Forward(2).
		Corner(-90).
		Forward(4).
		Corner(-90).
		Forward(2)

	return csg.Revolve(profile, csg.WithNamedColor("seagreen")), nil
}

// wedgeHub shows the partial-sweep policy: a three-quarter cylinder with
// a full cone seated on top.
func wedgeHub() (*csg.Solid, error) {
	base := csg.Cylinder(20, 10, csg.WithAngle(270), csg.WithNamedColor("firebrick"))
	top := csg.Cone(12, 8).MoveY(8)
	return csg.Merge(base, top)
}

// heatSink is a plate carrying a grid of square fins.
func heatSink() (*csg.Solid, error) {
	plate := csg.Cube(46, 4, 46, csg.WithNamedColor("silver"))
	fin := csg.Cube(4, 18, 4).MoveY(10)

	fins, err := csg.Grid(fin, csg.GridOptions{Cols: 6, Rows: 6, Gap: 4})
	if err != nil {
		return nil, err
	}
	// Recenter the fin field over the plate; the fins sink one unit into
	// the plate so the union shares volume, not just a face.
	fins.Move(-20, 0, -20)
	return csg.Merge(plate, fins)
}

// ballGrid rings twelve spheres around a center sphere.
func ballGrid() (*csg.Solid, error) {
	center := csg.Sphere(8, csg.WithNamedColor("gold"))
	ring, err := csg.CircularArray(csg.Sphere(3), csg.CircularOptions{
		Count:  12,
		Radius: 15,
	})
	if err != nil {
		return nil, err
	}
	return csg.Merge(center, ring)
}
