// Command wallcut previews a cube, L-shape or T-shape profile with its
// dimension labels and exports the drawing as SVG, PNG or PDF, or the
// extruded solid as STL.
//
//	wallcut -shape l-shape -set mainWidth=30 -set depth=25 -o part.svg
//	wallcut -config part.toml -o part.stl
//
// With no -o flag a summary of the projection is printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/soypat/wallcut"
	"github.com/soypat/wallcut/form"
	"github.com/soypat/wallcut/render"
	"github.com/soypat/wallcut/solid"
	"gonum.org/v1/plot/vg"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "wallcut:", err)
		os.Exit(1)
	}
}

// edits collects repeated -set flags in the order given.
type edits []string

func (e *edits) String() string { return strings.Join(*e, ",") }

func (e *edits) Set(s string) error {
	if _, _, err := form.ParseEdit(s); err != nil {
		return err
	}
	*e = append(*e, s)
	return nil
}

type config struct {
	shape       string
	file        string
	sets        edits
	output      string
	width       float64
	supersample int
	verbose     bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("wallcut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.shape, "shape", "", "profile to draw: cube, l-shape or t-shape (default cube)")
	fs.StringVar(&cfg.file, "config", "", "shape file (.toml, .yaml or .yml) to start from")
	fs.Var(&cfg.sets, "set", "dimension edit `key=value`, may be repeated")
	fs.StringVar(&cfg.output, "o", "", "output file, format by extension: .svg, .png, .pdf or .stl")
	fs.Float64Var(&cfg.width, "width", 0, "drawing width in points, pixels for PNG (default viewport width)")
	fs.IntVar(&cfg.supersample, "supersample", 2, "PNG supersampling factor")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	st, err := load(log, cfg)
	if err != nil {
		return err
	}
	p := st.Projection()
	log.Debug("projected", "shape", p.Kind, "scale", p.Scale, "faces", len(p.Faces), "labels", len(p.Annotations))
	if cfg.output == "" {
		return summarize(stdout, p)
	}
	return export(log, cfg, st.Dimensions(), p)
}

// load builds the form state: shape file first, then -shape, then -set
// edits in command line order.
func load(log *slog.Logger, cfg config) (*form.State, error) {
	st := form.New()
	if cfg.file != "" {
		f, err := form.OpenFile(cfg.file)
		if err != nil {
			return nil, err
		}
		if err := st.Load(f); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.file, err)
		}
		log.Debug("loaded shape file", "path", cfg.file, "shape", st.Kind())
	}
	if cfg.shape != "" {
		kind, err := wallcut.ParseShapeKind(cfg.shape)
		if err != nil {
			return nil, err
		}
		if kind != st.Kind() {
			if cfg.file != "" {
				log.Warn("shape flag overrides shape file, its dimensions are discarded", "file", st.Kind(), "flag", kind)
			}
			st.Select(kind)
		}
	}
	for _, e := range cfg.sets {
		key, raw, _ := form.ParseEdit(e)
		if err := st.Set(key, raw); err != nil {
			return nil, err
		}
		log.Debug("set dimension", "key", key, "raw", raw)
	}
	return st, nil
}

func export(log *slog.Logger, cfg config, d wallcut.Dimensions, p wallcut.Projection) (err error) {
	format, err := render.FormatOf(cfg.output)
	if err != nil {
		return err
	}
	fp, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	if format == render.STL {
		prism := solid.New(d)
		tris := prism.Triangles()
		if err := render.WriteSTL(fp, tris); err != nil {
			return err
		}
		log.Info("wrote solid", "path", cfg.output, "shape", prism.Kind, "triangles", len(tris), "volume", prism.Volume())
		return nil
	}
	opts := render.Options{Width: vg.Length(cfg.width), Supersample: cfg.supersample}
	if err := render.Write(fp, format, p, opts); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	log.Info("wrote drawing", "path", cfg.output, "format", format)
	return nil
}
