// Package boolean implements the default mesh boolean evaluator: union,
// difference, and intersection of closed triangle meshes via BSP solid
// clipping.
//
// Meshes are exchanged as flat vertex buffers — consecutive x, y, z
// triples, three vertices per triangle — so the package has no dependency
// on the authoring layer and can be swapped out behind its interface.
//
// The algorithm builds a BSP tree per operand, clips each tree against the
// other, and reassembles the surviving polygons. Robustness is tolerance
// based (see epsilon); inputs must be closed, consistently outward-wound
// meshes.
package boolean

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// epsilon is the plane-distance tolerance separating "on the plane" from
// front/back during polygon classification.
const epsilon = 1e-5

// Union returns the volume covered by either mesh.
func Union(a, b []float64) ([]float64, error) {
	pa, err := toPolygons(a)
	if err != nil {
		return nil, err
	}
	pb, err := toPolygons(b)
	if err != nil {
		return nil, err
	}
	if len(pa) == 0 {
		return toTriangles(pb), nil
	}
	if len(pb) == 0 {
		return toTriangles(pa), nil
	}

	na, nb := buildNode(pa), buildNode(pb)
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	return toTriangles(na.allPolygons()), nil
}

// Difference returns the volume of a not covered by b.
func Difference(a, b []float64) ([]float64, error) {
	pa, err := toPolygons(a)
	if err != nil {
		return nil, err
	}
	pb, err := toPolygons(b)
	if err != nil {
		return nil, err
	}
	if len(pa) == 0 || len(pb) == 0 {
		return toTriangles(pa), nil
	}

	na, nb := buildNode(pa), buildNode(pb)
	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()
	return toTriangles(na.allPolygons()), nil
}

// Intersection returns the volume common to both meshes.
func Intersection(a, b []float64) ([]float64, error) {
	pa, err := toPolygons(a)
	if err != nil {
		return nil, err
	}
	pb, err := toPolygons(b)
	if err != nil {
		return nil, err
	}
	if len(pa) == 0 || len(pb) == 0 {
		return nil, nil
	}

	na, nb := buildNode(pa), buildNode(pb)
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()
	return toTriangles(na.allPolygons()), nil
}

// plane is an oriented plane in normal-distance form: dot(n, v) == w for
// points on the plane, positive side in the normal direction.
type plane struct {
	n r3.Vec
	w float64
}

func planeFrom(a, b, c r3.Vec) (plane, bool) {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	norm := r3.Norm(n)
	if norm < 1e-12 {
		return plane{}, false
	}
	n = r3.Scale(1/norm, n)
	return plane{n: n, w: r3.Dot(n, a)}, true
}

func (p plane) flipped() plane {
	return plane{n: r3.Scale(-1, p.n), w: -p.w}
}

// polygon is a planar convex face with at least three vertices, wound
// counter-clockwise around its plane normal.
type polygon struct {
	verts []r3.Vec
	plane plane
}

func newPolygon(verts []r3.Vec) (polygon, bool) {
	if len(verts) < 3 {
		return polygon{}, false
	}
	p, ok := planeFrom(verts[0], verts[1], verts[2])
	if !ok {
		return polygon{}, false
	}
	return polygon{verts: verts, plane: p}, true
}

func (p polygon) flipped() polygon {
	verts := make([]r3.Vec, len(p.verts))
	for i, v := range p.verts {
		verts[len(p.verts)-1-i] = v
	}
	return polygon{verts: verts, plane: p.plane.flipped()}
}

// Vertex classification relative to a plane.
const (
	coplanarClass = 0
	frontClass    = 1
	backClass     = 2
	spanningClass = 3
)

// split partitions poly by the plane into the four destination lists.
// Coplanar polygons go to coFront or coBack depending on their facing;
// spanning polygons are cut along the plane.
func (p plane) split(poly polygon, coFront, coBack, front, back *[]polygon) {
	polyClass := 0
	classes := make([]int, len(poly.verts))
	for i, v := range poly.verts {
		t := r3.Dot(p.n, v) - p.w
		c := coplanarClass
		if t < -epsilon {
			c = backClass
		} else if t > epsilon {
			c = frontClass
		}
		polyClass |= c
		classes[i] = c
	}

	switch polyClass {
	case coplanarClass:
		if r3.Dot(p.n, poly.plane.n) > 0 {
			*coFront = append(*coFront, poly)
		} else {
			*coBack = append(*coBack, poly)
		}
	case frontClass:
		*front = append(*front, poly)
	case backClass:
		*back = append(*back, poly)
	case spanningClass:
		var f, b []r3.Vec
		for i := range poly.verts {
			j := (i + 1) % len(poly.verts)
			ci, cj := classes[i], classes[j]
			vi, vj := poly.verts[i], poly.verts[j]
			if ci != backClass {
				f = append(f, vi)
			}
			if ci != frontClass {
				b = append(b, vi)
			}
			if (ci | cj) == spanningClass {
				t := (p.w - r3.Dot(p.n, vi)) / r3.Dot(p.n, r3.Sub(vj, vi))
				v := r3.Add(vi, r3.Scale(t, r3.Sub(vj, vi)))
				f = append(f, v)
				b = append(b, v)
			}
		}
		if fp, ok := newPolygon(f); ok {
			*front = append(*front, fp)
		}
		if bp, ok := newPolygon(b); ok {
			*back = append(*back, bp)
		}
	}
}

// node is one cell of a BSP tree holding the polygons coplanar with its
// splitting plane.
type node struct {
	plane       *plane
	front, back *node
	polygons    []polygon
}

func buildNode(polygons []polygon) *node {
	n := &node{}
	n.build(polygons)
	return n
}

// build inserts polygons into the subtree, creating children as needed.
func (n *node) build(polygons []polygon) {
	if len(polygons) == 0 {
		return
	}
	if n.plane == nil {
		p := polygons[0].plane
		n.plane = &p
	}
	var front, back []polygon
	for _, poly := range polygons {
		n.plane.split(poly, &n.polygons, &n.polygons, &front, &back)
	}
	if len(front) > 0 {
		if n.front == nil {
			n.front = &node{}
		}
		n.front.build(front)
	}
	if len(back) > 0 {
		if n.back == nil {
			n.back = &node{}
		}
		n.back.build(back)
	}
}

// invert swaps solid and empty space in the subtree.
func (n *node) invert() {
	for i, p := range n.polygons {
		n.polygons[i] = p.flipped()
	}
	if n.plane != nil {
		p := n.plane.flipped()
		n.plane = &p
	}
	if n.front != nil {
		n.front.invert()
	}
	if n.back != nil {
		n.back.invert()
	}
	n.front, n.back = n.back, n.front
}

// clipPolygons removes from the list every polygon fragment inside the
// solid represented by the subtree.
func (n *node) clipPolygons(polygons []polygon) []polygon {
	if n.plane == nil {
		return append([]polygon(nil), polygons...)
	}
	var front, back []polygon
	for _, p := range polygons {
		n.plane.split(p, &front, &back, &front, &back)
	}
	if n.front != nil {
		front = n.front.clipPolygons(front)
	}
	if n.back != nil {
		back = n.back.clipPolygons(back)
	} else {
		back = nil
	}
	return append(front, back...)
}

// clipTo removes every polygon in this subtree that lies inside the other
// tree's solid.
func (n *node) clipTo(other *node) {
	n.polygons = other.clipPolygons(n.polygons)
	if n.front != nil {
		n.front.clipTo(other)
	}
	if n.back != nil {
		n.back.clipTo(other)
	}
}

// allPolygons collects the polygons of the whole subtree.
func (n *node) allPolygons() []polygon {
	out := append([]polygon(nil), n.polygons...)
	if n.front != nil {
		out = append(out, n.front.allPolygons()...)
	}
	if n.back != nil {
		out = append(out, n.back.allPolygons()...)
	}
	return out
}

// toPolygons converts a flat vertex buffer into BSP polygons, dropping
// degenerate triangles.
func toPolygons(buf []float64) ([]polygon, error) {
	if len(buf)%9 != 0 {
		return nil, fmt.Errorf("boolean: vertex buffer length %d not divisible by 9", len(buf))
	}
	polys := make([]polygon, 0, len(buf)/9)
	for i := 0; i < len(buf); i += 9 {
		verts := []r3.Vec{
			{X: buf[i], Y: buf[i+1], Z: buf[i+2]},
			{X: buf[i+3], Y: buf[i+4], Z: buf[i+5]},
			{X: buf[i+6], Y: buf[i+7], Z: buf[i+8]},
		}
		if p, ok := newPolygon(verts); ok {
			polys = append(polys, p)
		}
	}
	return polys, nil
}

// toTriangles fans each polygon into triangles and flattens the result.
func toTriangles(polys []polygon) []float64 {
	var out []float64
	for _, p := range polys {
		for i := 1; i+1 < len(p.verts); i++ {
			a, b, c := p.verts[0], p.verts[i], p.verts[i+1]
			if r3.Norm2(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) < 1e-18 {
				continue
			}
			out = append(out,
				a.X, a.Y, a.Z,
				b.X, b.Y, b.Z,
				c.X, c.Y, c.Z,
			)
		}
	}
	return out
}
