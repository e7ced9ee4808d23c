// Package csg provides a programmatic solid-modeling library for Go.
//
// # Overview
//
// csg builds closed triangle meshes by composing primitive shapes, custom
// 2D profiles, and boolean set operations through plain function calls.
// The output of every construction is a single closed Solid whose flattened
// vertex buffer can be handed to a viewer or encoded as binary STL.
//
// # Quick Start
//
//	import "github.com/SegmentController/csg-builder-sub000"
//
//	// A cube with a cylindrical bore through it.
//	body := csg.Cube(20, 20, 20)
//	bore := csg.Cylinder(3, 25).AsNegative()
//	part, err := csg.Merge(body, bore)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Export as binary STL.
//	f, _ := os.Create("part.stl")
//	defer f.Close()
//	stl.Write(f, part.VertexBuffer())
//
// # Architecture
//
// The library is organized into:
//   - Public API: Solid, Path, PathBuilder, primitives, Merge/Union/Subtract
//   - Subpackages: boolean (default mesh evaluator), cache (memoization),
//     stl (binary export)
//   - Commands: cmd/csgdemo (part registry + export), cmd/csgview (viewer)
//
// # Coordinate System
//
// Right-handed coordinates with Y up:
//   - X increases right, Z increases toward the viewer
//   - Revolution and circular arrangement sweep around the Y axis
//   - Angles are degrees throughout the public API
//
// # Pose And Mutation
//
// Transform calls (At, Move, Rotate, Scale) mutate only the solid's pose and
// return the receiver for chaining; they never touch the geometry buffer.
// Align and Center bake the pose into the buffer and are the expensive
// operations. Clone and AsNegative return new, independent solids; they are
// the only way a solid crosses an ownership boundary.
//
// # Boolean Evaluation
//
// Mesh booleans are delegated to an Evaluator. The default evaluator is the
// BSP-based one in the boolean subpackage; SetEvaluator swaps in any other
// implementation (for example a sturdier external CSG kernel) without
// changing authoring code.
package csg
