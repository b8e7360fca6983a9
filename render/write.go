package render

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/soypat/wallcut"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an output file format.
type Format uint8

const (
	SVG Format = iota
	PNG
	PDF
	STL
)

var formatNames = [...]string{SVG: "svg", PNG: "png", PDF: "pdf", STL: "stl"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + fmt.Sprint(uint8(f)) + ")"
}

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format name, case insensitive and with an optional
// leading dot, e.g. "SVG" or ".png".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// FormatOf returns the format matching the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Options control the size and quality of drawn output.
type Options struct {
	// Width of the output in points, pixels for PNG. Defaults to the
	// viewport width.
	Width vg.Length
	// Supersample renders PNGs this many times larger and downscales
	// the result. Values below 2 disable it.
	Supersample int
}

const defaultSupersample = 2

// pointsPerInch is the DPI at which one point maps to one pixel.
const pointsPerInch = int(vg.Inch)

// DefaultOptions draws at the viewport size with supersampled PNGs.
var DefaultOptions = Options{Supersample: defaultSupersample}

// Write draws p in the given drawn format. STL is written from a mesh
// with WriteSTL instead.
func Write(w io.Writer, format Format, p wallcut.Projection, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = vg.Length(p.Viewport.Width)
	}
	height := Height(p, width)
	switch format {
	case SVG:
		c := vgsvg.New(width, height)
		Draw(c, p, width)
		_, err := c.WriteTo(w)
		return err
	case PDF:
		c := vgpdf.New(width, height)
		Draw(c, p, width)
		_, err := c.WriteTo(w)
		return err
	case PNG:
		return writePNG(w, p, width, height, opts.Supersample)
	case STL:
		return errors.New("STL output needs a mesh, use WriteSTL")
	}
	return fmt.Errorf("%w %v", ErrUnknownFormat, format)
}

func writePNG(w io.Writer, p wallcut.Projection, width, height vg.Length, k int) error {
	if k < 2 {
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(pointsPerInch))
		Draw(c, p, width)
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	}
	// k pixels per point, downscaled to one pixel per point.
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(pointsPerInch*k))
	Draw(c, p, width)
	img := resize.Resize(uint(width.Points()), 0, c.Image(), resize.Lanczos3)
	return png.Encode(w, img)
}
