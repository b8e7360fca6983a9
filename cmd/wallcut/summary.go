package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/soypat/wallcut"
	"github.com/soypat/wallcut/solid"
)

// summarize prints the dimensions, labels and geometry of p. Styling is
// dropped when w is not a terminal.
func summarize(w io.Writer, p wallcut.Projection) error {
	out := termenv.NewOutput(w)
	title := out.String(p.Kind.Title()).Bold().Foreground(out.Color("6"))
	heading := func(s string) termenv.Style { return out.String(s).Faint() }

	fmt.Fprintln(out, title)
	for _, f := range p.Dims.Fields() {
		fmt.Fprintf(out, "  %-22s %s\n", f.Label, wallcut.FormatMM(f.Value))
	}

	fmt.Fprintln(out, heading("labels"))
	for _, a := range p.Annotations {
		l := a.Label()
		fmt.Fprintf(out, "  %-10s at (%.1f, %.1f) along %.0f°\n", a.Text, l.TextPos.X, l.TextPos.Y, wallcut.RtoD(l.Angle))
	}

	fmt.Fprintln(out, heading("projection"))
	counts := make(map[wallcut.Role]int)
	for _, f := range p.Faces {
		counts[f.Role]++
	}
	fmt.Fprintf(out, "  %-10s %d (%d side, %d top)\n", "faces", len(p.Faces), counts[wallcut.RoleSide], counts[wallcut.RoleTop])
	fmt.Fprintf(out, "  %-10s %g\n", "scale", p.Scale)
	vp := p.Viewport
	fmt.Fprintf(out, "  %-10s %.1f %.1f %.1f %.1f\n", "viewport", vp.X, vp.Y, vp.Width, vp.Height)

	prism := solid.New(p.Dims)
	_, err := fmt.Fprintf(out, "  %-10s %s\n", "volume", out.String(fmt.Sprintf("%.6g mm³", prism.Volume())).Bold())
	return err
}
