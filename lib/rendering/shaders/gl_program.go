package shaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dashgl/gltriangle/lib/rendering/gldriver"
	"github.com/dashgl/gltriangle/lib/rendering/renderconsts"
)

var (
	ErrVertexShader   = errors.New("error in vertex shader")
	ErrFragmentShader = errors.New("error in fragment shader")
	ErrLink           = errors.New("error when linking program")
)

// BuildGLProgram compiles and links src. On any failure every shader and
// program object created so far is deleted before returning.
func BuildGLProgram(g gldriver.GL, src *ProgramSources) (uint32, error) {
	vertexShader, err := compileShader(g, src.Vertex, renderconsts.VertexShader)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrVertexShader, err)
	}

	fragmentShader, err := compileShader(g, src.Fragment, renderconsts.FragmentShader)
	if err != nil {
		g.DeleteShader(vertexShader)
		return 0, fmt.Errorf("%w: %w", ErrFragmentShader, err)
	}

	program, err := linkProgram(g, vertexShader, fragmentShader)

	// The program keeps what it needs; the shader objects are no longer
	// useful either way.
	g.DeleteShader(vertexShader)
	g.DeleteShader(fragmentShader)

	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLink, err)
	}
	return program, nil
}

func linkProgram(g gldriver.GL, vertexShader, fragmentShader uint32) (uint32, error) {
	program := g.CreateProgram()

	g.AttachShader(program, vertexShader)
	g.AttachShader(program, fragmentShader)
	g.LinkProgram(program)

	var status int32
	g.GetProgramiv(program, renderconsts.LinkStatus, &status)
	if status == renderconsts.False {
		logmsg := g.GetProgramInfoLog(program)
		g.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", logmsg)
	}

	g.DetachShader(program, vertexShader)
	g.DetachShader(program, fragmentShader)

	return program, nil
}

func compileShader(g gldriver.GL, source string, shaderType uint32) (uint32, error) {
	shader := g.CreateShader(shaderType)

	g.ShaderSource(shader, source)
	g.CompileShader(shader)

	var status int32
	g.GetShaderiv(shader, renderconsts.CompileStatus, &status)
	if status == renderconsts.False {
		clog := g.GetShaderInfoLog(shader)
		g.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %q: %v", source, clog)
	}

	return shader, nil
}

// DumpSources writes the rendered sources into dir as triangle.vert and
// triangle.frag.
func DumpSources(dir string, src *ProgramSources) error {
	for name, content := range map[string]string{VertexTemplate: src.Vertex, FragmentTemplate: src.Fragment} {
		filename := filepath.Join(dir, name)
		err := os.WriteFile(filename, []byte(content), 0o644)
		if err != nil {
			return fmt.Errorf("could not write debug file %s: %w", filename, err)
		}
	}
	return nil
}
