package csg

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is the accumulated placement of a solid layered on top of its raw
// geometry buffer: position, per-axis rotation in degrees, and per-axis
// multiplicative scale. Geometry is posed as scale, then rotation about X,
// Y, Z in that order, then translation.
type Pose struct {
	Position r3.Vec
	Rotation r3.Vec
	Scale    r3.Vec
}

func identityPose() Pose {
	return Pose{Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Edge names a face of a solid's bounding box for Align.
type Edge string

// Bounding-box edges. Bottom/Top are the -Y/+Y faces, Left/Right the
// -X/+X faces, Back/Front the -Z/+Z faces.
const (
	EdgeBottom Edge = "bottom"
	EdgeTop    Edge = "top"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeBack   Edge = "back"
	EdgeFront  Edge = "front"
)

// Axis names a coordinate axis for Center.
type Axis string

// Coordinate axes.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Solid is a closed triangle mesh with an accumulated pose, a color tag,
// and a negative flag for subtractive composition. Its geometry is a valid
// closed, triangulated manifold once constructed.
//
// Transform methods mutate the receiver and return it for chaining.
// Clone and AsNegative return new, independent solids.
type Solid struct {
	id       uuid.UUID
	geom     *Mesh
	pose     Pose
	color    RGBA
	negative bool
}

// newSolid wraps a freshly generated mesh in a solid with identity pose.
func newSolid(m *Mesh) *Solid {
	return &Solid{
		id:    uuid.New(),
		geom:  m,
		pose:  identityPose(),
		color: DefaultColor,
	}
}

// ID returns the solid's identity. Every construction, clone, and
// composition result carries a distinct identity.
func (s *Solid) ID() uuid.UUID { return s.id }

// Pose returns the solid's current pose.
func (s *Solid) Pose() Pose { return s.pose }

// Color returns the solid's color tag.
func (s *Solid) Color() RGBA { return s.color }

// SetColor sets the solid's color tag and returns the receiver.
func (s *Solid) SetColor(c RGBA) *Solid {
	s.color = c
	return s
}

// IsNegative reports whether the solid is marked as subtractive material.
func (s *Solid) IsNegative() bool { return s.negative }

// Clone returns a deep copy of the solid with a fresh identity.
// The copy owns its geometry; transforming it never affects the original.
func (s *Solid) Clone() *Solid {
	geom := &Mesh{}
	if err := copier.CopyWithOption(geom, s.geom, copier.Option{DeepCopy: true}); err != nil {
		// Copying a mesh into a mesh cannot mismatch types.
		panic(fmt.Sprintf("csg: clone failed: %v", err))
	}
	return &Solid{
		id:       uuid.New(),
		geom:     geom,
		pose:     s.pose,
		color:    s.color,
		negative: s.negative,
	}
}

// AsNegative returns an independent copy marked as subtractive material
// for use in Merge composition lists. The receiver is not modified.
func (s *Solid) AsNegative() *Solid {
	c := s.Clone()
	c.negative = true
	return c
}

// At sets the absolute position. All three coordinates are required
// together; non-finite values panic. O(1), pose only.
func (s *Solid) At(x, y, z float64) *Solid {
	if !isFinite(x) || !isFinite(y) || !isFinite(z) {
		panic(fmt.Sprintf("csg: non-finite position (%v, %v, %v)", x, y, z))
	}
	s.pose.Position = r3.Vec{X: x, Y: y, Z: z}
	return s
}

// Move translates the solid relative to its current position. Unlike At,
// non-finite components are sanitized to zero instead of panicking, so a
// stray NaN in incremental placement arithmetic moves nothing rather than
// poisoning the pose. O(1), pose only.
func (s *Solid) Move(dx, dy, dz float64) *Solid {
	s.pose.Position = r3.Add(s.pose.Position, r3.Vec{
		X: sanitize(dx),
		Y: sanitize(dy),
		Z: sanitize(dz),
	})
	return s
}

// MoveX translates along X only.
func (s *Solid) MoveX(d float64) *Solid { return s.Move(d, 0, 0) }

// MoveY translates along Y only.
func (s *Solid) MoveY(d float64) *Solid { return s.Move(0, d, 0) }

// MoveZ translates along Z only.
func (s *Solid) MoveZ(d float64) *Solid { return s.Move(0, 0, d) }

// Rotate adds per-axis rotation in degrees. Rotations accumulate and are
// applied about X, then Y, then Z. Non-finite values panic. O(1), pose only.
func (s *Solid) Rotate(rx, ry, rz float64) *Solid {
	if !isFinite(rx) || !isFinite(ry) || !isFinite(rz) {
		panic(fmt.Sprintf("csg: non-finite rotation (%v, %v, %v)", rx, ry, rz))
	}
	s.pose.Rotation = r3.Add(s.pose.Rotation, r3.Vec{X: rx, Y: ry, Z: rz})
	return s
}

// Scale multiplies the per-axis scale factors. Factors accumulate
// multiplicatively. A zero or non-finite factor panics: zero collapses
// geometry irrecoverably. O(1), pose only.
func (s *Solid) Scale(sx, sy, sz float64) *Solid {
	for _, f := range [3]float64{sx, sy, sz} {
		if !isFinite(f) || f == 0 {
			panic(fmt.Sprintf("csg: invalid scale factor %v", f))
		}
	}
	s.pose.Scale = r3.Vec{
		X: s.pose.Scale.X * sx,
		Y: s.pose.Scale.Y * sy,
		Z: s.pose.Scale.Z * sz,
	}
	return s
}

// ScaleUniform multiplies all three scale factors by f. When combining
// with per-axis scaling, apply the uniform factor first.
func (s *Solid) ScaleUniform(f float64) *Solid {
	return s.Scale(f, f, f)
}

// Align bakes the pose into the geometry buffer, then shifts the solid so
// the named bounding-box face lies on its zero plane (bottom: minY = 0,
// top: maxY = 0, and so on). The pose is reset in the process. Unlike the
// O(1) pose mutators this rewrites every vertex. Invalid edges panic.
func (s *Solid) Align(edge Edge) *Solid {
	s.bake()
	min, max := s.geom.BoundingBox()

	var shift r3.Vec
	switch edge {
	case EdgeBottom:
		shift.Y = -min.Y
	case EdgeTop:
		shift.Y = -max.Y
	case EdgeLeft:
		shift.X = -min.X
	case EdgeRight:
		shift.X = -max.X
	case EdgeBack:
		shift.Z = -min.Z
	case EdgeFront:
		shift.Z = -max.Z
	default:
		panic(fmt.Sprintf("csg: invalid edge %q", edge))
	}
	s.geom.Transform(Translation(shift))
	return s
}

// Center bakes the pose into the geometry buffer, then recenters the solid
// on the given axes (all three when none are named). The pose is reset in
// the process. O(vertex count). Invalid axes panic.
func (s *Solid) Center(axes ...Axis) *Solid {
	s.bake()
	min, max := s.geom.BoundingBox()
	c := r3.Scale(0.5, r3.Add(min, max))

	if len(axes) == 0 {
		axes = []Axis{AxisX, AxisY, AxisZ}
	}
	var shift r3.Vec
	for _, a := range axes {
		switch a {
		case AxisX:
			shift.X = -c.X
		case AxisY:
			shift.Y = -c.Y
		case AxisZ:
			shift.Z = -c.Z
		default:
			panic(fmt.Sprintf("csg: invalid axis %q", a))
		}
	}
	s.geom.Transform(Translation(shift))
	return s
}

// poseMatrix composes the pose: scale, rotate X, Y, Z, translate.
func (s *Solid) poseMatrix() Matrix {
	return Translation(s.pose.Position).
		Mul(RotationZ(s.pose.Rotation.Z)).
		Mul(RotationY(s.pose.Rotation.Y)).
		Mul(RotationX(s.pose.Rotation.X)).
		Mul(Scaling(s.pose.Scale))
}

// bake applies the pose to the geometry buffer and resets the pose.
func (s *Solid) bake() {
	m := s.poseMatrix()
	if m != Identity() {
		s.geom.Transform(m)
	}
	s.pose = identityPose()
}

// worldMesh returns a copy of the geometry with the pose applied.
// The solid itself is not modified.
func (s *Solid) worldMesh() *Mesh {
	m := s.geom.Clone()
	m.Transform(s.poseMatrix())
	return m
}

// VertexBuffer returns the solid's world-space geometry as a flat buffer
// of x, y, z coordinate triples, nine values per triangle. This is the
// hand-off format for viewers and exporters. The buffer is a copy; the
// solid is not modified.
func (s *Solid) VertexBuffer() []float64 {
	return s.worldMesh().Vertices
}

func sanitize(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}
