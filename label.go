package wallcut

import (
	"math"

	"github.com/soypat/wallcut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is a straight line in drawing space.
type Segment struct {
	A, B r2.Vec
}

// Label is a placed dimension annotation, ready to be drawn.
type Label struct {
	Text string
	// Leader is the measured edge displaced by the annotation offset.
	Leader Segment
	// Extensions tie each measured endpoint to its leader endpoint. Drawn dashed.
	Extensions [2]Segment
	// Ticks are short marks across the leader at each of its ends.
	Ticks [2]Segment
	// TextPos is the center of the text, both axes.
	TextPos r2.Vec
	// Angle is the leader direction in radians, atan2 convention.
	Angle float64
	// Rotation of the text in radians. Text is always drawn upright so
	// this is zero whatever the leader angle.
	Rotation float64
}

// PlaceLabel places a dimension label measuring the edge p1-p2. The leader
// runs parallel to the edge displaced by offset and the text sits at the
// leader midpoint, pushed TextOffset units along the leader's left normal.
func PlaceLabel(p1, p2 r2.Vec, text string, offset r2.Vec) Label {
	a := r2.Add(p1, offset)
	b := r2.Add(p2, offset)
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	sin, cos := math.Sincos(angle)
	// Normal to the leader.
	n := r2.Vec{X: -sin, Y: cos}
	mid := d2.Mid(a, b)
	half := r2.Scale(TickSize/2, n)
	return Label{
		Text:   text,
		Leader: Segment{A: a, B: b},
		Extensions: [2]Segment{
			{A: p1, B: a},
			{A: p2, B: b},
		},
		Ticks: [2]Segment{
			{A: r2.Sub(a, half), B: r2.Add(a, half)},
			{A: r2.Sub(b, half), B: r2.Add(b, half)},
		},
		TextPos: r2.Vec{X: mid.X - TextOffset*sin, Y: mid.Y + TextOffset*cos},
		Angle:   angle,
	}
}
