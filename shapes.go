package wallcut

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// silhouette is the per-shape input of the projection, in millimetres
// and clamped. Outlines use drawing orientation: y grows downward.
type silhouette struct {
	extent  float64  // largest silhouette axis, normalized to NormalizedSize
	depth   float64  // extrusion depth
	outline []r2.Vec // front face, vertex order fixes face winding and draw order
	sides   []edge   // side faces in outline traversal order
	top     *edge    // top face, drawn after the sides
	notes   []note
}

// edge selects the front outline edge from vertex edge to edge+1.
type edge struct {
	edge  int
	shade Shade
}

// vertex refers to a front outline vertex or its back counterpart.
type vertex struct {
	i    int
	back bool
}

func (v vertex) in(front, back []r2.Vec) r2.Vec {
	if v.back {
		return back[v.i]
	}
	return front[v.i]
}

func fv(i int) vertex { return vertex{i: i} }
func bv(i int) vertex { return vertex{i: i, back: true} }

// note is an annotation request. Offsets are picked per edge so labels
// clear the solid and each other.
type note struct {
	from, to vertex
	value    float64
	offset   r2.Vec
}

func (d CubeDims) silhouette() silhouette {
	w := clampDim(d.Width)
	h := clampDim(d.Height)
	dp := clampDim(d.Depth)
	return silhouette{
		extent: math.Max(w, math.Max(h, dp)),
		depth:  dp,
		outline: []r2.Vec{
			{X: 0, Y: h}, // 0 bottom left
			{X: w, Y: h}, // 1 bottom right
			{X: w, Y: 0}, // 2 top right
			{X: 0, Y: 0}, // 3 top left
		},
		sides: []edge{
			{0, ShadeSide}, // bottom
			{1, ShadeSide}, // right
			{2, ShadeTop},  // top
		},
		notes: []note{
			{fv(1), fv(2), d.Height, r2.Vec{X: 15}},
			{fv(0), fv(1), d.Width, r2.Vec{Y: 15}},
			{fv(2), bv(2), d.Depth, r2.Vec{X: 10, Y: -10}},
		},
	}
}

func (d LShapeDims) silhouette() silhouette {
	mw := clampDim(d.MainWidth)
	mh := clampDim(d.MainHeight)
	aw := clampDim(d.ArmWidth)
	ah := clampDim(d.ArmHeight)
	dp := clampDim(d.Depth)
	return silhouette{
		extent: math.Max(aw, math.Max(mh, dp)),
		depth:  dp,
		outline: []r2.Vec{
			{X: 0, Y: 0},        // 0 top left of the vertical arm
			{X: mw, Y: 0},       // 1 top right of the vertical arm
			{X: mw, Y: mh - ah}, // 2 inner corner
			{X: aw, Y: mh - ah}, // 3 top right of the horizontal arm
			{X: aw, Y: mh},      // 4 bottom right
			{X: 0, Y: mh},       // 5 bottom left
		},
		sides: []edge{
			{1, ShadeSide}, // vertical arm right
			{2, ShadeTop},  // horizontal arm top
			{3, ShadeSide}, // horizontal arm right
			{4, ShadeSide}, // bottom
		},
		top: &edge{0, ShadeTop},
		notes: []note{
			{fv(5), fv(0), d.MainHeight, r2.Vec{X: -15}},
			{fv(4), fv(5), d.ArmWidth, r2.Vec{Y: 15}},
			{fv(0), fv(1), d.MainWidth, r2.Vec{Y: -15}},
			{fv(3), fv(4), d.ArmHeight, r2.Vec{X: 15}},
			{fv(0), bv(0), d.Depth, r2.Vec{X: -10, Y: -10}},
		},
	}
}

func (d TShapeDims) silhouette() silhouette {
	tw := clampDim(d.TopWidth)
	th := clampDim(d.TopHeight)
	sw := clampDim(d.StemWidth)
	sh := clampDim(d.StemHeight)
	dp := clampDim(d.Depth)
	total := th + sh
	// Stem is centered under the top bar.
	o := (tw - sw) / 2
	return silhouette{
		extent: math.Max(tw, math.Max(total, dp)),
		depth:  dp,
		outline: []r2.Vec{
			{X: 0, Y: 0},          // 0 top bar top left
			{X: tw, Y: 0},         // 1 top bar top right
			{X: tw, Y: th},        // 2 top bar bottom right
			{X: o + sw, Y: th},    // 3 stem top right
			{X: o + sw, Y: total}, // 4 stem bottom right
			{X: o, Y: total},      // 5 stem bottom left
			{X: o, Y: th},         // 6 stem top left
			{X: 0, Y: th},         // 7 top bar bottom left
		},
		sides: []edge{
			{1, ShadeSide},      // top bar right
			{2, ShadeUnderside}, // right overhang
			{3, ShadeSide},      // stem right
			{4, ShadeUnderside}, // stem bottom
			{5, ShadeSide},      // stem left
			{6, ShadeUnderside}, // left overhang
		},
		top: &edge{0, ShadeTop},
		notes: []note{
			{fv(0), fv(1), d.TopWidth, r2.Vec{Y: -15}},
			{fv(1), fv(2), d.TopHeight, r2.Vec{X: 15}},
			{fv(7), fv(5), total, r2.Vec{X: -15}},
			{fv(5), fv(4), d.StemWidth, r2.Vec{Y: 15}},
			{fv(0), bv(0), d.Depth, r2.Vec{X: -10, Y: -10}},
		},
	}
}
