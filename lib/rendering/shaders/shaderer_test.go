package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = mgl32.Vec4{0, 0, 1, 1}

func TestBuiltinSources(t *testing.T) {
	s, err := NewShaderer("", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{VertexTemplate, FragmentTemplate}, s.TemplateNames())

	src, err := s.Sources(NewShaderData(blue))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src.Vertex, GLSLPreamble))
	assert.Contains(t, src.Vertex, "attribute vec2 coord2d;")
	assert.Contains(t, src.Vertex, "gl_Position = vec4(coord2d, 0.0, 1.0);")

	assert.True(t, strings.HasPrefix(src.Fragment, GLSLPreamble))
	assert.Contains(t, src.Fragment, "gl_FragColor = vec4(0.0, 0.0, 1.0, 1.0);")
}

func TestFragmentColourLiterals(t *testing.T) {
	s, err := NewShaderer("", "")
	require.NoError(t, err)

	src, err := s.Sources(NewShaderData(mgl32.Vec4{0.5, 0.25, 1, 0}))
	require.NoError(t, err)
	assert.Contains(t, src.Fragment, "vec4(0.5, 0.25, 1.0, 0.0)")
}

func TestOverrides(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "custom.vert")
	require.NoError(t, os.WriteFile(vert, []byte("{{ .Preamble }}attribute vec2 pos;\nvoid main(void) { gl_Position = vec4(pos, 0.0, 1.0); }\n"), 0o644))

	s, err := NewShaderer(vert, "")
	require.NoError(t, err)

	src, err := s.Sources(NewShaderData(blue))
	require.NoError(t, err)
	assert.Equal(t, GLSLPreamble+"attribute vec2 pos;\nvoid main(void) { gl_Position = vec4(pos, 0.0, 1.0); }\n", src.Vertex)
	assert.Contains(t, src.Fragment, "gl_FragColor", "fragment stays builtin")
}

func TestOverrideErrors(t *testing.T) {
	_, err := NewShaderer(filepath.Join(t.TempDir(), "missing.vert"), "")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.frag")
	require.NoError(t, os.WriteFile(bad, []byte("{{ .Preamble "), 0o644))
	_, err = NewShaderer("", bad)
	assert.Error(t, err)
}

func TestGLFloat(t *testing.T) {
	assert.Equal(t, "0.0", glFloat(0))
	assert.Equal(t, "1.0", glFloat(1))
	assert.Equal(t, "0.5", glFloat(0.5))
	assert.Equal(t, "-0.5", glFloat(-0.5))
}

func TestDumpSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, DumpSources(dir, &ProgramSources{Vertex: "v", Fragment: "f"}))

	b, err := os.ReadFile(filepath.Join(dir, VertexTemplate))
	require.NoError(t, err)
	assert.Equal(t, "v", string(b))
	b, err = os.ReadFile(filepath.Join(dir, FragmentTemplate))
	require.NoError(t, err)
	assert.Equal(t, "f", string(b))
}
