package form

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/wallcut"
	"gopkg.in/yaml.v3"
)

// File is a shape file: a shape and the dimension values that differ
// from its defaults. In TOML:
//
//	shape = "l-shape"
//
//	[dimensions]
//	mainWidth = 30
//	depth = 25
type File struct {
	Shape      wallcut.ShapeKind  `toml:"shape" yaml:"shape"`
	Dimensions map[string]float64 `toml:"dimensions" yaml:"dimensions"`
}

// Record returns the shape defaults overridden by the file's values.
func (f File) Record() (wallcut.Dimensions, error) {
	if !slices.Contains(wallcut.Kinds, f.Shape) {
		return nil, fmt.Errorf("%w %v", wallcut.ErrUnknownShape, f.Shape)
	}
	d := wallcut.Defaults(f.Shape)
	keys := make([]string, 0, len(f.Dimensions))
	for k := range f.Dimensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var err error
		d, err = d.With(k, f.Dimensions[k])
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Load selects the file's shape and dimensions.
func (s *State) Load(f File) error {
	d, err := f.Record()
	if err != nil {
		return err
	}
	s.SetDimensions(d)
	return nil
}

// Decode reads a shape file in the given syntax, "toml" or "yaml".
func Decode(r io.Reader, syntax string) (File, error) {
	var f File
	var err error
	switch strings.ToLower(syntax) {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&f)
	default:
		return f, fmt.Errorf("unsupported shape file syntax %q", syntax)
	}
	if err != nil {
		return f, fmt.Errorf("decoding %s shape file: %w", syntax, err)
	}
	return f, nil
}

// OpenFile reads a shape file, choosing the syntax from its extension.
func OpenFile(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Decode(bytes.NewReader(b), strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
