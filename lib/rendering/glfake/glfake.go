// Package glfake provides an in-memory gldriver.GL that records every call
// and keeps enough object state to check compile, link and cleanup paths.
package glfake

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/dashgl/gltriangle/lib/rendering/gldriver"
	"github.com/dashgl/gltriangle/lib/rendering/renderconsts"
)

var _ gldriver.GL = (*GL)(nil)

type Call struct {
	Name string
	Args []any
}

type Shader struct {
	Type     uint32
	Source   string
	Compiled bool
}

type Program struct {
	Shaders    []uint32
	Linked     bool
	Attributes []string
}

// DrawCall captures the state a DrawArrays call saw.
type DrawCall struct {
	Mode     uint32
	First    int32
	Count    int32
	Program  uint32
	Enabled  []uint32
	Vertices []float32
	Size     int32
}

var attributeRe = regexp.MustCompile(`(?m)^\s*attribute\s+\w+\s+(\w+)\s*;`)

type GL struct {
	// FailCompile makes compilation of the given shader type fail.
	FailCompile map[uint32]bool
	// FailLink makes every link fail.
	FailLink bool

	Calls      []Call
	Draws      []DrawCall
	Background [4]float32

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program

	nextID      uint32
	current     uint32
	enabled     map[uint32]bool
	pointerData []float32
	pointerSize int32
}

func New() *GL {
	return &GL{
		FailCompile: make(map[uint32]bool),
		Shaders:     make(map[uint32]*Shader),
		Programs:    make(map[uint32]*Program),
		enabled:     make(map[uint32]bool),
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

// CallNames returns the names of all recorded calls in order.
func (g *GL) CallNames() []string {
	names := make([]string, 0, len(g.Calls))
	for _, c := range g.Calls {
		names = append(names, c.Name)
	}
	return names
}

// Count returns how many times name was called.
func (g *GL) Count(name string) int {
	n := 0
	for _, c := range g.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls and draws but keeps GL objects.
func (g *GL) Reset() {
	g.Calls = nil
	g.Draws = nil
}

func (g *GL) ClearColor(r, gg, b, a float32) {
	g.record("ClearColor", r, gg, b, a)
	g.Background = [4]float32{r, gg, b, a}
}

func (g *GL) Clear(mask uint32) {
	g.record("Clear", mask)
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	g.nextID++
	g.record("CreateShader", xtype)
	g.Shaders[g.nextID] = &Shader{Type: xtype}
	return g.nextID
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource", shader, source)
	if s, ok := g.Shaders[shader]; ok {
		s.Source = source
	}
}

func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader", shader)
	if s, ok := g.Shaders[shader]; ok {
		s.Compiled = !g.FailCompile[s.Type]
	}
}

func (g *GL) GetShaderiv(shader uint32, pname uint32, params *int32) {
	g.record("GetShaderiv", shader, pname)
	s, ok := g.Shaders[shader]
	switch {
	case !ok:
		*params = 0
	case pname == renderconsts.CompileStatus:
		*params = boolStatus(s.Compiled)
	case pname == renderconsts.InfoLogLength:
		*params = int32(len(g.GetShaderInfoLog(shader)))
	}
}

func (g *GL) GetShaderInfoLog(shader uint32) string {
	if s, ok := g.Shaders[shader]; ok && !s.Compiled {
		return fmt.Sprintf("0:1(1): error: shader %d rejected", shader)
	}
	return ""
}

func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader", shader)
	delete(g.Shaders, shader)
}

func (g *GL) CreateProgram() uint32 {
	g.nextID++
	g.record("CreateProgram")
	g.Programs[g.nextID] = &Program{}
	return g.nextID
}

func (g *GL) AttachShader(program, shader uint32) {
	g.record("AttachShader", program, shader)
	if p, ok := g.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (g *GL) DetachShader(program, shader uint32) {
	g.record("DetachShader", program, shader)
	if p, ok := g.Programs[program]; ok {
		p.Shaders = slices.DeleteFunc(p.Shaders, func(s uint32) bool { return s == shader })
	}
}

func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram", program)
	p, ok := g.Programs[program]
	if !ok {
		return
	}
	p.Linked = false
	p.Attributes = nil
	if g.FailLink {
		return
	}
	var haveVertex, haveFragment bool
	for _, id := range p.Shaders {
		s, ok := g.Shaders[id]
		if !ok || !s.Compiled {
			return
		}
		switch s.Type {
		case renderconsts.VertexShader:
			haveVertex = true
			for _, m := range attributeRe.FindAllStringSubmatch(s.Source, -1) {
				p.Attributes = append(p.Attributes, m[1])
			}
		case renderconsts.FragmentShader:
			haveFragment = true
		}
	}
	p.Linked = haveVertex && haveFragment
}

func (g *GL) GetProgramiv(program uint32, pname uint32, params *int32) {
	g.record("GetProgramiv", program, pname)
	p, ok := g.Programs[program]
	switch {
	case !ok:
		*params = 0
	case pname == renderconsts.LinkStatus:
		*params = boolStatus(p.Linked)
	case pname == renderconsts.InfoLogLength:
		*params = int32(len(g.GetProgramInfoLog(program)))
	}
}

func (g *GL) GetProgramInfoLog(program uint32) string {
	if p, ok := g.Programs[program]; ok && !p.Linked {
		return "error: program did not link"
	}
	return ""
}

func (g *GL) UseProgram(program uint32) {
	g.record("UseProgram", program)
	g.current = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram", program)
	delete(g.Programs, program)
	if g.current == program {
		g.current = 0
	}
}

func (g *GL) GetAttribLocation(program uint32, name string) int32 {
	g.record("GetAttribLocation", program, name)
	p, ok := g.Programs[program]
	if !ok || !p.Linked {
		return -1
	}
	return int32(slices.Index(p.Attributes, name))
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray", index)
	g.enabled[index] = true
}

func (g *GL) DisableVertexAttribArray(index uint32) {
	g.record("DisableVertexAttribArray", index)
	delete(g.enabled, index)
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, data []float32) {
	g.record("VertexAttribPointer", index, size, xtype, normalized, stride)
	g.pointerData = slices.Clone(data)
	g.pointerSize = size
}

func (g *GL) DrawArrays(mode uint32, first, count int32) {
	g.record("DrawArrays", mode, first, count)
	var enabled []uint32
	for i := range g.enabled {
		enabled = append(enabled, i)
	}
	slices.Sort(enabled)
	g.Draws = append(g.Draws, DrawCall{
		Mode:     mode,
		First:    first,
		Count:    count,
		Program:  g.current,
		Enabled:  enabled,
		Vertices: g.pointerData,
		Size:     g.pointerSize,
	})
}

func boolStatus(b bool) int32 {
	if b {
		return renderconsts.True
	}
	return renderconsts.False
}
