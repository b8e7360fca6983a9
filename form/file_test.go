package form_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/wallcut"
	"github.com/soypat/wallcut/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lshapeTOML = `shape = "l-shape"

[dimensions]
mainWidth = 30
depth = 25
`

const tshapeYAML = `shape: T-Shape
dimensions:
  stemHeight: 60
`

func TestDecodeTOML(t *testing.T) {
	f, err := form.Decode(strings.NewReader(lshapeTOML), "toml")
	require.NoError(t, err)
	d, err := f.Record()
	require.NoError(t, err)
	assert.Equal(t, wallcut.LShapeDims{MainWidth: 30, MainHeight: 100, ArmWidth: 100, ArmHeight: 40, Depth: 25}, d)
}

func TestDecodeYAML(t *testing.T) {
	f, err := form.Decode(strings.NewReader(tshapeYAML), "yml")
	require.NoError(t, err)
	s := form.New()
	require.NoError(t, s.Load(f))
	assert.Equal(t, wallcut.TShape, s.Kind())
	v, err := wallcut.FieldValue(s.Dimensions(), "stemHeight")
	require.NoError(t, err)
	assert.Equal(t, 60.0, v)
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		name, syntax, src string
	}{
		{"unknown shape", "toml", `shape = "circle"`},
		{"unknown key", "yaml", "shape: cube\ncolour: red\n"},
		{"bad syntax", "json", `{"shape":"cube"}`},
	} {
		_, err := form.Decode(strings.NewReader(test.src), test.syntax)
		assert.Error(t, err, test.name)
	}

	f, err := form.Decode(strings.NewReader("shape = \"cube\"\n[dimensions]\nmainWidth = 3\n"), "toml")
	require.NoError(t, err)
	_, err = f.Record()
	assert.ErrorIs(t, err, wallcut.ErrUnknownField)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.toml")
	require.NoError(t, os.WriteFile(path, []byte(lshapeTOML), 0o644))
	f, err := form.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, wallcut.LShape, f.Shape)
	assert.Equal(t, 30.0, f.Dimensions["mainWidth"])

	_, err = form.OpenFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
