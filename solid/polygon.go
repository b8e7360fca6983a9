package solid

import (
	"math"

	"github.com/soypat/wallcut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices, loop closed
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box
}

func newPolygon(vertex []r2.Vec) *polygon {
	n := len(vertex)
	if n < 3 {
		panic("number of vertices < 3")
	}
	s := polygon{}
	s.vertex = append(make([]r2.Vec, 0, n+1), vertex...)
	s.vertex = append(s.vertex, vertex[0])

	nsegs := n
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
	}
	s.bb = r2.Box(d2.BoxOf(vertex))
	return &s
}

// Evaluate returns the signed distance from p to the polygon, negative inside.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}
	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

func (s *polygon) Bounds() r2.Box {
	return s.bb
}
