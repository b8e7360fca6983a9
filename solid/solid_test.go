package solid_test

import (
	"math"
	"testing"

	"github.com/soypat/wallcut"
	"github.com/soypat/wallcut/internal/d2"
	"github.com/soypat/wallcut/internal/d3"
	"github.com/soypat/wallcut/render"
	"github.com/soypat/wallcut/solid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPrismVolume(t *testing.T) {
	for _, test := range []struct {
		d      wallcut.Dimensions
		volume float64
	}{
		{wallcut.CubeDims{Width: 50, Height: 50, Depth: 50}, 50 * 50 * 50},
		{wallcut.Defaults(wallcut.LShape), (40*100 + 60*40) * 40},
		{wallcut.Defaults(wallcut.TShape), (120*40 + 40*80) * 40},
		// Arm as wide as the body collapses two vertices.
		{wallcut.LShapeDims{MainWidth: 30, MainHeight: 60, ArmWidth: 30, ArmHeight: 10, Depth: 2}, 30 * 60 * 2},
	} {
		p := solid.New(test.d)
		assert.InDelta(t, test.volume, p.Volume(), 1e-6, test.d.Kind())
		assert.InDelta(t, test.volume, meshVolume(p.Triangles()), 1e-6, test.d.Kind())
	}
}

func TestPrismTriangleCount(t *testing.T) {
	for kind, want := range map[wallcut.ShapeKind]int{
		wallcut.Cube:   12,
		wallcut.LShape: 20,
		wallcut.TShape: 28,
	} {
		tris := solid.New(wallcut.Defaults(kind)).Triangles()
		assert.Len(t, tris, want, kind)
		for _, tri := range tris {
			assert.False(t, tri.Degenerate(1e-9), kind)
		}
	}
}

func TestPrismOutwardNormals(t *testing.T) {
	for _, kind := range wallcut.Kinds {
		p := solid.New(wallcut.Defaults(kind))
		for _, tri := range p.Triangles() {
			c := r3.Scale(1./3, r3.Add(r3.Add(tri.V[0], tri.V[1]), tri.V[2]))
			probe := r3.Add(c, r3.Scale(0.5, tri.Normal()))
			assert.Greater(t, p.Evaluate(probe), 0.0, "%s: normal points inward at %v", kind, c)
		}
	}
}

func TestPrismCCW(t *testing.T) {
	for _, kind := range wallcut.Kinds {
		p := solid.New(wallcut.Defaults(kind))
		assert.Greater(t, d2.Set(p.Outline).Area(), 0.0, kind)
		assert.Equal(t, 0.0, d2.Set(p.Outline).Min().Y, kind)
	}
}

func TestPrismEvaluate(t *testing.T) {
	p := solid.New(wallcut.CubeDims{Width: 10, Height: 20, Depth: 30})
	assert.InDelta(t, -5, p.Evaluate(r3.Vec{X: 5, Y: 10, Z: 15}), 1e-12)
	assert.InDelta(t, 1, p.Evaluate(r3.Vec{X: 11, Y: 10, Z: 15}), 1e-12)
	assert.InDelta(t, 2, p.Evaluate(r3.Vec{X: 5, Y: 10, Z: -2}), 1e-12)
	assert.InDelta(t, 0, p.Evaluate(r3.Vec{X: 0, Y: 10, Z: 15}), 1e-12)

	bb := p.Bounds()
	assert.Equal(t, r3.Vec{}, bb.Min)
	assert.Equal(t, r3.Vec{X: 10, Y: 20, Z: 30}, bb.Max)
}

func TestPrismEvaluateConcave(t *testing.T) {
	// Notch of the default L sits above the horizontal arm.
	p := solid.New(wallcut.Defaults(wallcut.LShape))
	notch := r3.Vec{X: 70, Y: 70, Z: 20}
	assert.Greater(t, p.Evaluate(notch), 0.0)
	assert.Less(t, p.Evaluate(r3.Vec{X: 20, Y: 70, Z: 20}), 0.0)
}

func TestNewPrismDrawingOrientation(t *testing.T) {
	// Clockwise in drawing space and counter-clockwise in drawing space
	// yield the same prism.
	sq := []r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	rev := []r2.Vec{sq[3], sq[2], sq[1], sq[0]}
	a := solid.NewPrism(wallcut.Cube, sq, 1)
	b := solid.NewPrism(wallcut.Cube, rev, 1)
	assert.InDelta(t, a.Volume(), b.Volume(), 1e-12)
	assert.Greater(t, d2.Set(b.Outline).Area(), 0.0)
}

func TestPrismIsMesher(t *testing.T) {
	var m render.Mesher = solid.New(nil)
	require.Len(t, m.Triangles(), 12)
}

// meshVolume computes the enclosed volume of a closed mesh with the
// divergence theorem.
func meshVolume(tris []render.Triangle3) float64 {
	var v float64
	for _, t := range tris {
		v += r3.Dot(t.V[0], r3.Cross(t.V[1], t.V[2])) / 6
	}
	return math.Abs(v)
}

func TestMeshWithinBounds(t *testing.T) {
	for _, kind := range wallcut.Kinds {
		p := solid.New(wallcut.Defaults(kind))
		var verts d3.Set
		for _, tri := range p.Triangles() {
			verts = append(verts, tri.V[:]...)
		}
		bb := p.Bounds()
		assert.True(t, d3.EqualWithin(bb.Min, verts.Min(), 1e-12), kind)
		assert.True(t, d3.EqualWithin(bb.Max, verts.Max(), 1e-12), kind)
	}
}
