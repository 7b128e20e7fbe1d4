package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexTemplate   = "triangle.vert"
	FragmentTemplate = "triangle.frag"

	// Coord2D is the vertex position input declared by the builtin
	// vertex shader.
	Coord2D = "coord2d"
)

var funcs = template.FuncMap{
	"glf": glFloat,
}

type Shaderer struct {
	templates *template.Template
}

// NewShaderer loads the builtin templates. A non-empty vertexPath or
// fragmentPath replaces the corresponding builtin with the file's
// contents, which is itself parsed as a template.
func NewShaderer(vertexPath, fragmentPath string) (*Shaderer, error) {
	s := &Shaderer{}

	var err error
	s.templates, err = template.New("").Funcs(funcs).ParseFS(templateDir, "*.frag", "*.vert")
	if err != nil {
		return nil, err
	}

	for name, path := range map[string]string{VertexTemplate: vertexPath, FragmentTemplate: fragmentPath} {
		if path == "" {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read shader override: %w", err)
		}
		_, err = s.templates.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("could not parse shader override %s: %w", path, err)
		}
	}

	return s, nil
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	Preamble  string
	Attribute string
	Colour    mgl32.Vec4
}

// NewShaderData fills in the build's GLSL preamble and the builtin
// attribute name.
func NewShaderData(colour mgl32.Vec4) *ShaderData {
	return &ShaderData{
		Preamble:  GLSLPreamble,
		Attribute: Coord2D,
		Colour:    colour,
	}
}

// ProgramSources holds the rendered GLSL for one program.
type ProgramSources struct {
	Vertex   string
	Fragment string
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) Sources(data *ShaderData) (*ProgramSources, error) {
	vertexShader, err := s.GetShaderSource(VertexTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := s.GetShaderSource(FragmentTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return &ProgramSources{Vertex: vertexShader, Fragment: fragmentShader}, nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		if t.Name() == "" {
			continue
		}
		names = append(names, t.Name())
	}
	return names
}

// glFloat prints f as a GLSL float literal; GLSL ES has no implicit int
// to float conversion so "1" must be written as "1.0".
func glFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
