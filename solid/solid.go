// Package solid models a wallcut profile as the prism it describes: the
// front outline extruded by its depth. Prisms evaluate as signed distance
// functions and mesh into closed triangle sets for STL export.
package solid

import (
	"math"

	"github.com/soypat/wallcut"
	"github.com/soypat/wallcut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-9

// SDF3 is a signed distance function in 3D space.
type SDF3 interface {
	// Evaluate returns the minimum distance from p to the surface,
	// negative if p is contained within the solid.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains the solid.
	Bounds() r3.Box
}

var _ SDF3 = (*Prism)(nil)

// Prism is a profile extruded along +z, from z=0 (front) to z=Depth
// (back). Units are millimetres, y grows upward.
type Prism struct {
	Kind wallcut.ShapeKind
	// Outline is counter-clockwise with no repeated or collinear vertices.
	Outline []r2.Vec
	Depth   float64
	sdf     *polygon
}

// New returns the prism described by the clamped dimensions of d.
func New(d wallcut.Dimensions) *Prism {
	if d == nil {
		d = wallcut.Defaults(wallcut.Cube)
	}
	outline, depth := wallcut.Outline(d)
	return NewPrism(d.Kind(), outline, depth)
}

// NewPrism extrudes an outline given in drawing orientation (y grows
// downward) by depth. The outline is flipped so its lowest point rests on
// y=0 and then cleaned up.
func NewPrism(kind wallcut.ShapeKind, outline []r2.Vec, depth float64) *Prism {
	top := d2.Set(outline).Max().Y
	flipped := make([]r2.Vec, len(outline))
	for i, v := range outline {
		flipped[i] = r2.Vec{X: v.X, Y: top - v.Y}
	}
	flipped = clean(flipped)
	if d2.Set(flipped).Area() < 0 {
		reverse(flipped)
	}
	return &Prism{
		Kind:    kind,
		Outline: flipped,
		Depth:   depth,
		sdf:     newPolygon(flipped),
	}
}

// Evaluate returns the signed distance from p to the prism surface.
func (s *Prism) Evaluate(p r3.Vec) float64 {
	a := s.sdf.Evaluate(r2.Vec{X: p.X, Y: p.Y})
	// extrusion region z = [0, depth]
	h := s.Depth / 2
	b := math.Abs(p.Z-h) - h
	return math.Max(a, b)
}

// Bounds returns the bounding box of the prism.
func (s *Prism) Bounds() r3.Box {
	bb := s.sdf.Bounds()
	return r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: 0},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: s.Depth},
	}
}

// Area returns the area of the outline.
func (s *Prism) Area() float64 {
	return math.Abs(d2.Set(s.Outline).Area())
}

// Volume returns the volume of the prism in cubic millimetres.
func (s *Prism) Volume() float64 {
	return s.Area() * s.Depth
}

// clean drops repeated vertices and vertices lying on the line between
// their neighbours. Degenerate L-shapes, e.g. an arm as wide as the
// main body, produce both.
func clean(v []r2.Vec) []r2.Vec {
	for changed := true; changed && len(v) > 3; {
		changed = false
		n := len(v)
		for i := 0; i < n; i++ {
			prev, cur, next := v[(i+n-1)%n], v[i], v[(i+1)%n]
			if d2.EqualWithin(prev, cur, tolerance) ||
				math.Abs(d2.Cross(r2.Sub(cur, prev), r2.Sub(next, cur))) <= tolerance {
				v = append(v[:i], v[i+1:]...)
				changed = true
				break
			}
		}
	}
	return v
}

func reverse(v []r2.Vec) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
