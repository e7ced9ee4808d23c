package csg

import "errors"

// Sentinel errors returned by composition and registry operations.
// Contract violations on constructors and strict transforms panic instead;
// see the package documentation for the split between the two tiers.
var (
	// ErrNegativeBase is returned by Merge when the first entry of a
	// composition list carries the negative flag. The base of a merge must
	// be positive material; there is nothing for a leading cut to remove.
	ErrNegativeBase = errors.New("csg: first merge entry must not be negative")

	// ErrNoSolids is returned by composition and arrangement entry points
	// invoked with an empty input list.
	ErrNoSolids = errors.New("csg: no solids given")

	// ErrUnknownPart is returned by a Registry when producing a name that
	// was never registered.
	ErrUnknownPart = errors.New("csg: unknown part")
)
