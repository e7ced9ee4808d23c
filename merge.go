package csg

// Merge folds an ordered composition list into one solid. The first entry
// is the base and must not be negative; every later entry is added to the
// running result when positive and subtracted when negative, in list order.
// Ordering matters: a cut only removes material that earlier entries have
// already contributed.
//
// The result is a fresh solid with an independent geometry buffer and the
// base entry's color. The inputs are not modified.
func Merge(solids ...*Solid) (*Solid, error) {
	if len(solids) == 0 {
		return nil, ErrNoSolids
	}
	if solids[0].IsNegative() {
		return nil, ErrNegativeBase
	}

	acc := solids[0].worldMesh()
	for _, s := range solids[1:] {
		op := OpAdd
		if s.IsNegative() {
			op = OpSubtract
		}
		var err error
		acc, err = activeEvaluator.Boolean(op, acc, s.worldMesh())
		if err != nil {
			return nil, err
		}
	}

	Logger().Debug("merged solids",
		"count", len(solids), "triangles", acc.TriangleCount())

	out := newSolid(acc)
	out.color = solids[0].color
	return out, nil
}

// Union combines solids into one, ignoring negative flags and ordering.
// A merge list with no negative entries is equivalent to a Union of the
// same entries.
func Union(solids ...*Solid) (*Solid, error) {
	if len(solids) == 0 {
		return nil, ErrNoSolids
	}
	acc := solids[0].worldMesh()
	for _, s := range solids[1:] {
		var err error
		acc, err = activeEvaluator.Boolean(OpAdd, acc, s.worldMesh())
		if err != nil {
			return nil, err
		}
	}
	out := newSolid(acc)
	out.color = solids[0].color
	return out, nil
}

// Subtract removes each cut from the base, ignoring negative flags.
func Subtract(base *Solid, cuts ...*Solid) (*Solid, error) {
	if base == nil {
		return nil, ErrNoSolids
	}
	acc := base.worldMesh()
	for _, s := range cuts {
		var err error
		acc, err = activeEvaluator.Boolean(OpSubtract, acc, s.worldMesh())
		if err != nil {
			return nil, err
		}
	}
	out := newSolid(acc)
	out.color = base.color
	return out, nil
}

// Intersect keeps only the volume common to both solids.
func Intersect(a, b *Solid) (*Solid, error) {
	if a == nil || b == nil {
		return nil, ErrNoSolids
	}
	acc, err := activeEvaluator.Boolean(OpIntersect, a.worldMesh(), b.worldMesh())
	if err != nil {
		return nil, err
	}
	out := newSolid(acc)
	out.color = a.color
	return out, nil
}
