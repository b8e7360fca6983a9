package solid

import (
	"github.com/soypat/wallcut/internal/d2"
	"github.com/soypat/wallcut/internal/d3"
	"github.com/soypat/wallcut/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ render.Mesher = (*Prism)(nil)

// Triangles returns a closed mesh of the prism with outward facing
// normals: both caps triangulated by ear clipping and two triangles per
// side wall.
func (s *Prism) Triangles() []render.Triangle3 {
	n := len(s.Outline)
	caps := triangulate(s.Outline)
	tris := make([]render.Triangle3, 0, 2*len(caps)+2*n)
	at := func(i int, z float64) r3.Vec { return d3.FromR2(s.Outline[i], z) }
	for _, c := range caps {
		// back cap looks +z, front cap looks -z.
		tris = append(tris,
			render.Triangle3{V: [3]r3.Vec{at(c[0], s.Depth), at(c[1], s.Depth), at(c[2], s.Depth)}},
			render.Triangle3{V: [3]r3.Vec{at(c[2], 0), at(c[1], 0), at(c[0], 0)}},
		)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a0, b0 := at(i, 0), at(j, 0)
		a1, b1 := at(i, s.Depth), at(j, s.Depth)
		tris = append(tris,
			render.Triangle3{V: [3]r3.Vec{a0, b0, b1}},
			render.Triangle3{V: [3]r3.Vec{a0, b1, a1}},
		)
	}
	return tris
}

// triangulate returns the index triples of a counter-clockwise polygon
// by ear clipping. Polygons with no ear to clip, which only happens when
// the outline crosses itself, are fanned from their first vertex.
func triangulate(poly []r2.Vec) [][3]int {
	idx := make([]int, len(poly))
	for i := range idx {
		idx[i] = i
	}
	out := make([][3]int, 0, len(poly)-2)
	for len(idx) > 3 {
		ear := -1
		for k := range idx {
			if isEar(poly, idx, k) {
				ear = k
				break
			}
		}
		if ear < 0 {
			for k := 1; k < len(idx)-1; k++ {
				out = append(out, [3]int{idx[0], idx[k], idx[k+1]})
			}
			return out
		}
		m := len(idx)
		out = append(out, [3]int{idx[(ear+m-1)%m], idx[ear], idx[(ear+1)%m]})
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	return append(out, [3]int{idx[0], idx[1], idx[2]})
}

func isEar(poly []r2.Vec, idx []int, k int) bool {
	m := len(idx)
	ia, ib, ic := idx[(k+m-1)%m], idx[k], idx[(k+1)%m]
	a, b, c := poly[ia], poly[ib], poly[ic]
	if d2.Cross(r2.Sub(b, a), r2.Sub(c, b)) <= tolerance {
		return false // reflex or flat
	}
	for _, i := range idx {
		if i == ia || i == ib || i == ic {
			continue
		}
		if inTriangle(poly[i], a, b, c) {
			return false
		}
	}
	return true
}

// inTriangle reports whether p lies inside or on the border of the
// counter-clockwise triangle abc.
func inTriangle(p, a, b, c r2.Vec) bool {
	return d2.Cross(r2.Sub(b, a), r2.Sub(p, a)) >= -tolerance &&
		d2.Cross(r2.Sub(c, b), r2.Sub(p, b)) >= -tolerance &&
		d2.Cross(r2.Sub(a, c), r2.Sub(p, c)) >= -tolerance
}
