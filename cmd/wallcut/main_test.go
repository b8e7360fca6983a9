package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/wallcut/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-shape", "t-shape", "-set", "stemHeight=60"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "T-Shape")
	assert.Contains(t, out, "60 mm")
	assert.Contains(t, out, "100 mm") // top height plus stem height
	assert.Contains(t, out, "volume")
	assert.NotContains(t, out, "\x1b[", "no escape codes outside a terminal")
}

func TestRunSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.svg")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-set", "width=80", "-o", path}, &stdout, &stderr))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "80 mm")
	assert.Contains(t, stderr.String(), "wrote drawing")
	assert.Zero(t, stdout.Len())
}

func TestRunSTL(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "part.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("shape: l-shape\ndimensions:\n  depth: 10\n"), 0o644))
	path := filepath.Join(dir, "part.stl")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", cfg, "-o", path, "-v"}, &stdout, &stderr))
	fp, err := os.Open(path)
	require.NoError(t, err)
	defer fp.Close()
	tris, err := render.ReadSTL(fp)
	require.NoError(t, err)
	assert.Len(t, tris, 20)
	assert.Contains(t, stderr.String(), "loaded shape file")
	assert.Contains(t, stderr.String(), "triangles=20")
	assert.Contains(t, stderr.String(), "shape=l-shape")
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-shape", "circle"},
		{"-set", "width"},
		{"-set", "width=abc"},
		{"-set", "mainWidth=3"},
		{"-o", "out.gif"},
		{"-config", "missing.toml"},
		{"stray"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Error(t, run(args, &stdout, &stderr), strings.Join(args, " "))
	}
}
