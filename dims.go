package wallcut

import (
	"errors"
	"fmt"
	"strings"
)

// ShapeKind selects which dimension record is valid and which
// projection applies.
type ShapeKind int

const (
	Cube ShapeKind = iota
	LShape
	TShape
)

// Kinds lists every shape kind in selector order.
var Kinds = []ShapeKind{Cube, LShape, TShape}

var (
	// ErrUnknownField is returned when a dimension key does not belong to the shape.
	ErrUnknownField = errors.New("unknown dimension field")
	// ErrUnknownShape is returned when parsing an unrecognised shape name.
	ErrUnknownShape = errors.New("unknown shape")
)

func (k ShapeKind) String() string {
	switch k {
	case Cube:
		return "cube"
	case LShape:
		return "l-shape"
	case TShape:
		return "t-shape"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Title returns the name shown on the shape selector.
func (k ShapeKind) Title() string {
	switch k {
	case Cube:
		return "Cube"
	case LShape:
		return "L-Shape"
	case TShape:
		return "T-Shape"
	}
	return k.String()
}

// ParseShapeKind accepts the names returned by String and Title, case insensitive.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cube":
		return Cube, nil
	case "l-shape", "lshape", "l":
		return LShape, nil
	case "t-shape", "tshape", "t":
		return TShape, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownShape, s)
}

// MarshalText implements encoding.TextMarshaler so kinds read and write
// as names in shape files.
func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(b []byte) error {
	kind, err := ParseShapeKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Field is a single named millimetre dimension of a shape.
type Field struct {
	Key   string // record key, e.g. "mainWidth"
	Label string // form label, e.g. "Vertical Arm Width"
	Value float64
}

// Dimensions is the tagged dimension record of a shape. The only
// implementations are CubeDims, LShapeDims and TShapeDims.
type Dimensions interface {
	// Kind returns the shape the record describes.
	Kind() ShapeKind
	// Fields returns the record's fields in form order.
	Fields() []Field
	// With returns a copy of the record with the field key set to v.
	With(key string, v float64) (Dimensions, error)

	silhouette() silhouette
}

// CubeDims are the dimensions of a rectangular block.
type CubeDims struct {
	Width, Height, Depth float64
}

// LShapeDims are the dimensions of an L profile. MainWidth and MainHeight
// describe the vertical arm, ArmWidth and ArmHeight the horizontal arm
// running along the bottom. MainHeight is thus the total height and
// ArmWidth the total width.
type LShapeDims struct {
	MainWidth, MainHeight float64
	ArmWidth, ArmHeight   float64
	Depth                 float64
}

// TShapeDims are the dimensions of a T profile: a top bar with a stem
// centered underneath it.
type TShapeDims struct {
	TopWidth, TopHeight   float64
	StemWidth, StemHeight float64
	Depth                 float64
}

// Defaults returns the dimensions loaded when a shape is selected.
func Defaults(kind ShapeKind) Dimensions {
	switch kind {
	case LShape:
		return LShapeDims{MainWidth: 40, MainHeight: 100, ArmWidth: 100, ArmHeight: 40, Depth: 40}
	case TShape:
		return TShapeDims{TopWidth: 120, TopHeight: 40, StemWidth: 40, StemHeight: 80, Depth: 40}
	}
	return CubeDims{Width: 50, Height: 50, Depth: 50}
}

// FieldValue returns the value of key in d.
func FieldValue(d Dimensions, key string) (float64, error) {
	for _, f := range d.Fields() {
		if f.Key == key {
			return f.Value, nil
		}
	}
	return 0, fmt.Errorf("%s %w %q", d.Kind(), ErrUnknownField, key)
}

func (CubeDims) Kind() ShapeKind { return Cube }

func (d CubeDims) Fields() []Field {
	return []Field{
		{"width", "Width (X)", d.Width},
		{"height", "Height (Y)", d.Height},
		{"depth", "Depth (Z)", d.Depth},
	}
}

func (d CubeDims) With(key string, v float64) (Dimensions, error) {
	switch key {
	case "width":
		d.Width = v
	case "height":
		d.Height = v
	case "depth":
		d.Depth = v
	default:
		return d, fmt.Errorf("cube %w %q", ErrUnknownField, key)
	}
	return d, nil
}

func (LShapeDims) Kind() ShapeKind { return LShape }

func (d LShapeDims) Fields() []Field {
	return []Field{
		{"mainHeight", "Total Height", d.MainHeight},
		{"armWidth", "Total Width", d.ArmWidth},
		{"mainWidth", "Vertical Arm Width", d.MainWidth},
		{"armHeight", "Horizontal Arm Height", d.ArmHeight},
		{"depth", "Depth", d.Depth},
	}
}

func (d LShapeDims) With(key string, v float64) (Dimensions, error) {
	switch key {
	case "mainWidth":
		d.MainWidth = v
	case "mainHeight":
		d.MainHeight = v
	case "armWidth":
		d.ArmWidth = v
	case "armHeight":
		d.ArmHeight = v
	case "depth":
		d.Depth = v
	default:
		return d, fmt.Errorf("l-shape %w %q", ErrUnknownField, key)
	}
	return d, nil
}

func (TShapeDims) Kind() ShapeKind { return TShape }

func (d TShapeDims) Fields() []Field {
	return []Field{
		{"topWidth", "Top Bar Width", d.TopWidth},
		{"topHeight", "Top Bar Height", d.TopHeight},
		{"stemWidth", "Stem Width", d.StemWidth},
		{"stemHeight", "Stem Height", d.StemHeight},
		{"depth", "Depth", d.Depth},
	}
}

func (d TShapeDims) With(key string, v float64) (Dimensions, error) {
	switch key {
	case "topWidth":
		d.TopWidth = v
	case "topHeight":
		d.TopHeight = v
	case "stemWidth":
		d.StemWidth = v
	case "stemHeight":
		d.StemHeight = v
	case "depth":
		d.Depth = v
	default:
		return d, fmt.Errorf("t-shape %w %q", ErrUnknownField, key)
	}
	return d, nil
}

// Clamp returns d with every field sanitized the way geometry sees it:
// non-finite values become 0 and everything is raised to at least 1.
func Clamp(d Dimensions) Dimensions {
	switch d := d.(type) {
	case CubeDims:
		return CubeDims{Width: clampDim(d.Width), Height: clampDim(d.Height), Depth: clampDim(d.Depth)}
	case LShapeDims:
		return LShapeDims{
			MainWidth: clampDim(d.MainWidth), MainHeight: clampDim(d.MainHeight),
			ArmWidth: clampDim(d.ArmWidth), ArmHeight: clampDim(d.ArmHeight),
			Depth: clampDim(d.Depth),
		}
	case TShapeDims:
		return TShapeDims{
			TopWidth: clampDim(d.TopWidth), TopHeight: clampDim(d.TopHeight),
			StemWidth: clampDim(d.StemWidth), StemHeight: clampDim(d.StemHeight),
			Depth: clampDim(d.Depth),
		}
	}
	return Clamp(Defaults(Cube))
}
