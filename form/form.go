// Package form holds the state behind the shape selector and the
// dimension inputs: which shape is selected and the raw field edits
// applied to its dimensions.
package form

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/soypat/wallcut"
)

// ErrNotNumeric is returned when a field edit does not parse as a number.
// The previous value of the field is kept.
var ErrNotNumeric = errors.New("not a number")

// State is the selected shape and its current dimensions.
// The zero value is not ready for use, see New.
type State struct {
	dims wallcut.Dimensions
}

// New returns a State with the cube selected and its default dimensions.
func New() *State {
	return &State{dims: wallcut.Defaults(wallcut.Cube)}
}

// Kind returns the selected shape.
func (s *State) Kind() wallcut.ShapeKind { return s.dims.Kind() }

// Dimensions returns the current dimension record.
func (s *State) Dimensions() wallcut.Dimensions { return s.dims }

// Select switches to kind and loads its default dimensions, discarding
// edits made to the previous shape.
func (s *State) Select(kind wallcut.ShapeKind) {
	s.dims = wallcut.Defaults(kind)
}

// SetDimensions replaces the record, which also selects its shape.
func (s *State) SetDimensions(d wallcut.Dimensions) {
	if d == nil {
		d = wallcut.Defaults(wallcut.Cube)
	}
	s.dims = d
}

// Set applies a raw form edit to field key. An empty string reads as 0.
// Text that is not a number is rejected and the field keeps its value.
func (s *State) Set(key, raw string) error {
	v, err := ParseValue(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	d, err := s.dims.With(key, v)
	if err != nil {
		return err
	}
	s.dims = d
	return nil
}

// Apply sets every field of edits in key order. It stops at the first
// error, edits before it remain applied.
func (s *State) Apply(edits map[string]string) error {
	keys := make([]string, 0, len(edits))
	for k := range edits {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := s.Set(k, edits[k]); err != nil {
			return err
		}
	}
	return nil
}

// Projection projects the current dimensions.
func (s *State) Projection() wallcut.Projection {
	return wallcut.Project(s.dims)
}

// ParseValue converts raw numeric input the way the dimension inputs do.
func ParseValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	// Out of range input saturates to an infinity which geometry clamps.
	return v, nil
}

// ParseEdit splits a "key=value" edit.
func ParseEdit(s string) (key, raw string, err error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("bad dimension edit %q, want key=value", s)
	}
	return key, raw, nil
}
