package wallcut_test

import (
	"math"
	"testing"

	"github.com/soypat/wallcut"
	"github.com/soypat/wallcut/internal/d2"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestPlaceLabelHorizontal(t *testing.T) {
	l := wallcut.PlaceLabel(r2.Vec{}, r2.Vec{X: 10}, "10 mm", r2.Vec{Y: 15})
	assert.Equal(t, r2.Vec{X: 5, Y: 25}, l.TextPos)
	assert.Equal(t, 0.0, l.Angle)
	assert.Equal(t, 0.0, l.Rotation)
	assert.Equal(t, wallcut.Segment{A: r2.Vec{Y: 15}, B: r2.Vec{X: 10, Y: 15}}, l.Leader)
	assert.Equal(t, wallcut.Segment{A: r2.Vec{}, B: r2.Vec{Y: 15}}, l.Extensions[0])
	assert.Equal(t, wallcut.Segment{A: r2.Vec{X: 10}, B: r2.Vec{X: 10, Y: 15}}, l.Extensions[1])
	assert.Equal(t, wallcut.Segment{A: r2.Vec{Y: 12.5}, B: r2.Vec{Y: 17.5}}, l.Ticks[0])
	assert.Equal(t, "10 mm", l.Text)
}

func TestPlaceLabelOrientations(t *testing.T) {
	for _, test := range []struct {
		name    string
		p1, p2  r2.Vec
		offset  r2.Vec
		wantPos r2.Vec
	}{
		// Leader pointing down (+y): normal is (-1, 0).
		{"down", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 20}, r2.Vec{X: 15}, r2.Vec{X: 5, Y: 10}},
		// Leader pointing up: text lands on the right.
		{"up", r2.Vec{X: 0, Y: 20}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: -15}, r2.Vec{X: -5, Y: 10}},
		// Leader pointing left: text lands above (smaller y).
		{"left", r2.Vec{X: 20, Y: 0}, r2.Vec{X: 0, Y: 0}, r2.Vec{Y: 15}, r2.Vec{X: 10, Y: 5}},
	} {
		l := wallcut.PlaceLabel(test.p1, test.p2, "", test.offset)
		assert.Truef(t, d2.EqualWithin(test.wantPos, l.TextPos, 1e-12), "%s: got %v want %v", test.name, l.TextPos, test.wantPos)
		assert.Equal(t, 0.0, l.Rotation, test.name)
	}
}

func TestPlaceLabelGeometry(t *testing.T) {
	p1 := r2.Vec{X: 3, Y: -7}
	p2 := r2.Vec{X: 41, Y: 19}
	off := r2.Vec{X: -10, Y: -10}
	l := wallcut.PlaceLabel(p1, p2, "x", off)
	// Leader is parallel to and as long as the measured edge.
	assert.InDelta(t, r2.Norm(r2.Sub(p2, p1)), r2.Norm(r2.Sub(l.Leader.B, l.Leader.A)), 1e-12)
	assert.InDelta(t, math.Atan2(p2.Y-p1.Y, p2.X-p1.X), l.Angle, 1e-12)
	// Text sits TextOffset away from the leader midpoint, perpendicular to it.
	mid := d2.Mid(l.Leader.A, l.Leader.B)
	d := r2.Sub(l.TextPos, mid)
	assert.InDelta(t, wallcut.TextOffset, r2.Norm(d), 1e-12)
	assert.InDelta(t, 0, r2.Dot(d, r2.Sub(l.Leader.B, l.Leader.A)), 1e-9)
	for i, tick := range l.Ticks {
		assert.InDelta(t, wallcut.TickSize, r2.Norm(r2.Sub(tick.B, tick.A)), 1e-12)
		end := [2]r2.Vec{l.Leader.A, l.Leader.B}[i]
		assert.True(t, d2.EqualWithin(end, d2.Mid(tick.A, tick.B), 1e-12))
	}
}

func TestAnnotationLabels(t *testing.T) {
	p := wallcut.Project(wallcut.Defaults(wallcut.Cube))
	labels := p.Labels()
	assert.Len(t, labels, len(p.Annotations))
	for i, l := range labels {
		a := p.Annotations[i]
		assert.Equal(t, a.Text, l.Text)
		assert.Equal(t, r2.Add(a.P1, a.Offset), l.Leader.A)
	}
}

func TestFormatMM(t *testing.T) {
	assert.Equal(t, "50 mm", wallcut.FormatMM(50))
	assert.Equal(t, "12.5 mm", wallcut.FormatMM(12.5))
	assert.Equal(t, "0.1 mm", wallcut.FormatMM(0.1))
	assert.Equal(t, "0 mm", wallcut.FormatMM(math.Inf(1)))
	assert.Equal(t, "-3 mm", wallcut.FormatMM(-3))
	assert.Equal(t, "0 mm", wallcut.FormatMM(math.Copysign(0, -1)))
}

func TestRtoD(t *testing.T) {
	assert.InDelta(t, 30, wallcut.RtoD(wallcut.SkewAngle), 1e-12)
	assert.InDelta(t, -90, wallcut.RtoD(-math.Pi/2), 1e-12)
}
