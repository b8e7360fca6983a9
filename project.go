// Package wallcut computes a pseudo-3D preview of a solid profile (cube,
// L-shape or T-shape) from its millimetre dimensions: the faces of an
// oblique projection in back to front order, the edges to annotate with
// their dimensions and the viewport fitting them.
//
// Projection is a pure function of the dimension record.
package wallcut

import (
	"math"

	"github.com/soypat/wallcut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Visual constants of the projection. Changing any of them changes the
// rendered appearance.
const (
	// SkewAngle is the angle of the receding depth axis.
	SkewAngle = math.Pi / 6
	// DepthFactor foreshortens the depth axis.
	DepthFactor = 0.7
	// NormalizedSize is the drawing length of the largest silhouette axis.
	NormalizedSize = 200.0
	// ViewportMargin surrounds the geometry's bounding box on every side.
	ViewportMargin = 40.0
	// TextOffset separates label text from its leader line.
	TextOffset = 10.0
	// TickSize is the length of the marks across each leader end.
	TickSize = 5.0
)

// Role is the semantic part of the solid a face belongs to.
type Role uint8

const (
	RoleBack Role = iota
	RoleSide
	RoleTop
	RoleFront
)

func (r Role) String() string {
	switch r {
	case RoleBack:
		return "back"
	case RoleSide:
		return "side"
	case RoleTop:
		return "top"
	case RoleFront:
		return "front"
	}
	return "unknown"
}

// Shade is a fill tone conveying depth. It carries no physical meaning.
type Shade uint8

const (
	ShadeBack      Shade = iota // back face
	ShadeSide                   // darkest, faces turned away from the light
	ShadeTop                    // lit faces looking up
	ShadeUnderside              // faces looking down, drawn as light as the front
	ShadeFront                  // lightest
)

// Face is a filled polygon of the projection.
type Face struct {
	Role  Role
	Shade Shade
	// Edge is the index of the front outline edge a side or top face is
	// swept from, -1 for the back and front faces.
	Edge   int
	Points []r2.Vec
}

// Annotation is an edge to be labelled with a dimension.
type Annotation struct {
	P1, P2 r2.Vec
	Text   string
	// Offset displaces the leader line from the edge.
	Offset r2.Vec
}

// Label places the annotation. See PlaceLabel.
func (a Annotation) Label() Label {
	return PlaceLabel(a.P1, a.P2, a.Text, a.Offset)
}

// Viewport is the rectangle the drawing must be fitted to.
type Viewport struct {
	X, Y, Width, Height float64
}

// Box returns the viewport as a bounding box.
func (v Viewport) Box() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: v.X, Y: v.Y},
		Max: r2.Vec{X: v.X + v.Width, Y: v.Y + v.Height},
	}
}

// Projection is the drawable output for one dimension record.
type Projection struct {
	Kind ShapeKind
	// Dims is the record as given, before clamping.
	Dims Dimensions
	// Scale maps millimetres to drawing units.
	Scale float64
	// Skew is the (dx, dy) decomposition of the foreshortened depth.
	// Back vertices sit at front + (dx, -dy).
	Skew r2.Vec
	// Front and Back are the outlines in drawing space. Back[i] is Front[i]
	// pushed back by the depth.
	Front, Back []r2.Vec
	// Faces in painter's order: back, sides, top, front.
	Faces       []Face
	Annotations []Annotation
	Viewport    Viewport
}

// Labels places every annotation of the projection.
func (p Projection) Labels() []Label {
	labels := make([]Label, len(p.Annotations))
	for i, a := range p.Annotations {
		labels[i] = a.Label()
	}
	return labels
}

// Project computes the projection of a dimension record. It never fails:
// degenerate input yields a minimum size shape. A nil record projects
// the cube defaults.
func Project(d Dimensions) Projection {
	if d == nil {
		d = Defaults(Cube)
	}
	s := d.silhouette()
	scale := NormalizedSize / s.extent
	depth := s.depth * scale * DepthFactor
	skew := d2.Pol{R: depth, Theta: SkewAngle}.PolarToCartesian()

	front := d2.Set(s.outline).Scale(scale)
	back := front.Translate(r2.Vec{X: skew.X, Y: -skew.Y})

	faces := make([]Face, 0, len(s.sides)+3)
	faces = append(faces, Face{Role: RoleBack, Shade: ShadeBack, Edge: -1, Points: back})
	for _, sd := range s.sides {
		faces = append(faces, sweep(front, back, RoleSide, sd))
	}
	if s.top != nil {
		faces = append(faces, sweep(front, back, RoleTop, *s.top))
	}
	faces = append(faces, Face{Role: RoleFront, Shade: ShadeFront, Edge: -1, Points: front})

	annotations := make([]Annotation, len(s.notes))
	for i, n := range s.notes {
		annotations[i] = Annotation{
			P1:     n.from.in(front, back),
			P2:     n.to.in(front, back),
			Text:   FormatMM(n.value),
			Offset: n.offset,
		}
	}

	bb := d2.BoxOf(front).Extend(d2.BoxOf(back))
	bb = bb.Enlarge(d2.Elem(2 * ViewportMargin))
	size := bb.Size()
	return Projection{
		Kind:        d.Kind(),
		Dims:        d,
		Scale:       scale,
		Skew:        skew,
		Front:       front,
		Back:        back,
		Faces:       faces,
		Annotations: annotations,
		Viewport:    Viewport{X: bb.Min.X, Y: bb.Min.Y, Width: size.X, Height: size.Y},
	}
}

// Outline returns the front outline of d in clamped millimetres and the
// clamped depth. The outline is in drawing orientation, y grows downward,
// with the same vertex order as Projection.Front.
func Outline(d Dimensions) (outline []r2.Vec, depth float64) {
	if d == nil {
		d = Defaults(Cube)
	}
	s := d.silhouette()
	return s.outline, s.depth
}

// sweep returns the quadrilateral swept by front edge e.edge towards the back.
func sweep(front, back []r2.Vec, role Role, e edge) Face {
	i, j := e.edge, (e.edge+1)%len(front)
	return Face{
		Role:   role,
		Shade:  e.shade,
		Edge:   e.edge,
		Points: []r2.Vec{front[i], back[i], back[j], front[j]},
	}
}
