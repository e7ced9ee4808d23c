package csg

import (
	"fmt"

	"github.com/SegmentController/csg-builder-sub000/boolean"
)

// Op selects a boolean set operation between two closed meshes.
type Op int

// Boolean operations.
const (
	OpAdd Op = iota
	OpSubtract
	OpIntersect
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpIntersect:
		return "intersect"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Evaluator computes boolean set operations between two closed meshes.
// The library treats it as a black box: it hands over well-formed closed
// meshes and uses whatever comes back. Watertightness of the result is the
// evaluator's responsibility.
type Evaluator interface {
	Boolean(op Op, a, b *Mesh) (*Mesh, error)
}

// activeEvaluator is the evaluator used by Merge, Union, Subtract,
// Intersect, and the partial-angle wedge policy. Construction is
// single-threaded by contract, so a plain package variable suffices.
var activeEvaluator Evaluator = bspEvaluator{}

// SetEvaluator replaces the active boolean evaluator. Pass nil to restore
// the default BSP evaluator from the boolean subpackage.
func SetEvaluator(e Evaluator) {
	if e == nil {
		e = bspEvaluator{}
	}
	activeEvaluator = e
}

// ActiveEvaluator returns the evaluator currently in use.
func ActiveEvaluator() Evaluator {
	return activeEvaluator
}

// bspEvaluator adapts the boolean subpackage's BSP solid clipping to the
// Evaluator interface. It is the default evaluator.
type bspEvaluator struct{}

func (bspEvaluator) Boolean(op Op, a, b *Mesh) (*Mesh, error) {
	var (
		out []float64
		err error
	)
	switch op {
	case OpAdd:
		out, err = boolean.Union(a.Vertices, b.Vertices)
	case OpSubtract:
		out, err = boolean.Difference(a.Vertices, b.Vertices)
	case OpIntersect:
		out, err = boolean.Intersection(a.Vertices, b.Vertices)
	default:
		return nil, fmt.Errorf("csg: unknown boolean op %v", op)
	}
	if err != nil {
		return nil, fmt.Errorf("csg: evaluator %v failed: %w", op, err)
	}
	return &Mesh{Vertices: out}, nil
}
