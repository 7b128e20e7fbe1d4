package shaders

import (
	"testing"

	"github.com/dashgl/gltriangle/lib/rendering/glfake"
	"github.com/dashgl/gltriangle/lib/rendering/renderconsts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinSources(t *testing.T) *ProgramSources {
	t.Helper()
	s, err := NewShaderer("", "")
	require.NoError(t, err)
	src, err := s.Sources(NewShaderData(blue))
	require.NoError(t, err)
	return src
}

func TestBuildGLProgram(t *testing.T) {
	g := glfake.New()

	program, err := BuildGLProgram(g, builtinSources(t))
	require.NoError(t, err)

	require.Contains(t, g.Programs, program)
	assert.True(t, g.Programs[program].Linked)
	assert.Equal(t, []string{"coord2d"}, g.Programs[program].Attributes)
	assert.Empty(t, g.Shaders, "shader objects are released once linked")
	assert.Equal(t, 2, g.Count("CompileShader"))
	assert.Equal(t, 1, g.Count("LinkProgram"))
}

func TestBuildGLProgramVertexFailure(t *testing.T) {
	g := glfake.New()
	g.FailCompile[renderconsts.VertexShader] = true

	_, err := BuildGLProgram(g, builtinSources(t))
	require.ErrorIs(t, err, ErrVertexShader)
	assert.NotErrorIs(t, err, ErrFragmentShader)
	assert.Contains(t, err.Error(), "rejected", "driver log is kept")

	assert.Empty(t, g.Shaders)
	assert.Empty(t, g.Programs)
	assert.Equal(t, 0, g.Count("CreateProgram"))
}

func TestBuildGLProgramFragmentFailure(t *testing.T) {
	g := glfake.New()
	g.FailCompile[renderconsts.FragmentShader] = true

	_, err := BuildGLProgram(g, builtinSources(t))
	require.ErrorIs(t, err, ErrFragmentShader)

	assert.Empty(t, g.Shaders, "the compiled vertex shader is released too")
	assert.Empty(t, g.Programs)
}

func TestBuildGLProgramLinkFailure(t *testing.T) {
	g := glfake.New()
	g.FailLink = true

	_, err := BuildGLProgram(g, builtinSources(t))
	require.ErrorIs(t, err, ErrLink)

	assert.Empty(t, g.Shaders)
	assert.Empty(t, g.Programs)
	assert.Equal(t, 1, g.Count("DeleteProgram"))
}
