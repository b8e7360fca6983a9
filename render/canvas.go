package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/soypat/wallcut"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Palette of the preview.
var (
	Background = mustHex("#1f2937")
	Stroke     = mustHex("#374151")
	LabelColor = color.White
)

// LabelFontSize is the size of label text in drawing units.
const LabelFontSize = 10

var shades = map[wallcut.Shade]color.Color{
	wallcut.ShadeBack:      mustHex("#6b7280"),
	wallcut.ShadeSide:      mustHex("#4b5563"),
	wallcut.ShadeTop:       mustHex("#9ca3af"),
	wallcut.ShadeUnderside: mustHex("#d1d5db"),
	wallcut.ShadeFront:     mustHex("#d1d5db"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ShadeColor returns the fill color of a face shade.
func ShadeColor(s wallcut.Shade) color.Color {
	if c, ok := shades[s]; ok {
		return c
	}
	return shades[wallcut.ShadeFront]
}

// Height returns the canvas height that keeps the viewport's aspect
// ratio at the given width.
func Height(p wallcut.Projection, width vg.Length) vg.Length {
	if p.Viewport.Width <= 0 {
		return width
	}
	return width * vg.Length(p.Viewport.Height/p.Viewport.Width)
}

// Draw paints p onto c: the background, every face in painter's order
// and then the dimension labels. The viewport is scaled uniformly to
// fill width; c should be Height(p, width) tall.
func Draw(c vg.CanvasSizer, p wallcut.Projection, width vg.Length) {
	dc := draw.New(c)
	m := newMapping(p.Viewport, width)
	w, h := c.Size()
	dc.FillPolygon(Background, []vg.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}})

	edge := draw.LineStyle{Color: Stroke, Width: 1}
	for _, f := range p.Faces {
		pts := m.points(f.Points)
		dc.FillPolygon(ShadeColor(f.Shade), pts)
		dc.StrokeLines(edge, append(pts, pts[0]))
	}
	for _, l := range p.Labels() {
		drawLabel(dc, m, l)
	}
}

func drawLabel(dc draw.Canvas, m mapping, l wallcut.Label) {
	leader := draw.LineStyle{Color: LabelColor, Width: 1}
	extension := draw.LineStyle{Color: LabelColor, Width: 0.5, Dashes: []vg.Length{2, 2}}
	for _, e := range l.Extensions {
		dc.StrokeLines(extension, m.segment(e))
	}
	dc.StrokeLines(leader, m.segment(l.Leader))
	for _, tick := range l.Ticks {
		dc.StrokeLines(leader, m.segment(tick))
	}
	sty := draw.TextStyle{
		Color:   LabelColor,
		Font:    font.From(labelFont, vg.Length(LabelFontSize*m.scale)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	dc.FillText(sty, m.point(l.TextPos), l.Text)
}

var labelFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// mapping takes drawing space, y down, to canvas space, y up.
type mapping struct {
	vp    wallcut.Viewport
	scale float64
}

func newMapping(vp wallcut.Viewport, width vg.Length) mapping {
	s := 1.0
	if vp.Width > 0 {
		s = float64(width) / vp.Width
	}
	return mapping{vp: vp, scale: s}
}

func (m mapping) point(v r2.Vec) vg.Point {
	return vg.Point{
		X: vg.Length((v.X - m.vp.X) * m.scale),
		Y: vg.Length((m.vp.Y + m.vp.Height - v.Y) * m.scale),
	}
}

func (m mapping) points(vs []r2.Vec) []vg.Point {
	pts := make([]vg.Point, len(vs))
	for i, v := range vs {
		pts[i] = m.point(v)
	}
	return pts
}

func (m mapping) segment(s wallcut.Segment) []vg.Point {
	return []vg.Point{m.point(s.A), m.point(s.B)}
}
