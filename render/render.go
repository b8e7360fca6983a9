// Package render draws wallcut projections onto vector and raster
// canvases and writes extruded solids as binary STL.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesher is a source of closed triangle meshes, like solid.Prism.
type Mesher interface {
	Triangles() []Triangle3
}

// Triangle3 is a 3D triangle. Vertices are counter-clockwise seen from
// outside the solid.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle, following the right
// hand rule on its vertex order.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if the triangle has no area to speak of,
// i.e. two of its vertices are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t.V[0], t.V[1])) <= tol ||
		r3.Norm(r3.Sub(t.V[1], t.V[2])) <= tol ||
		r3.Norm(r3.Sub(t.V[2], t.V[0])) <= tol
}
