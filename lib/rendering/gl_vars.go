package rendering

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"runtime"

	"github.com/dashgl/gltriangle/lib/rendering/gldriver"
	"github.com/dashgl/gltriangle/lib/rendering/renderconsts"
	"github.com/dashgl/gltriangle/lib/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrAttribute is returned when the program has no active attribute of
// the requested name.
var ErrAttribute = errors.New("could not bind attribute")

// TriangleVertices are the clip-space corners of the triangle.
var TriangleVertices = [3]mgl32.Vec2{
	{0.0, 0.5},
	{-0.5, -0.5},
	{0.5, -0.5},
}

// GLVars owns the linked program and the location of its position
// attribute. It is valid from NewGLVars until Free.
type GLVars struct {
	gl gldriver.GL

	Program       uint32
	AttributeName string
	Coord2DAttrib uint32

	freed bool
}

// NewGLVars takes ownership of program and resolves attribute in it. On
// failure the program is deleted.
func NewGLVars(g gldriver.GL, program uint32, attribute string) (*GLVars, error) {
	v := &GLVars{
		gl:            g,
		AttributeName: attribute,
	}

	loc, err := v.resolve(program)
	if err != nil {
		g.DeleteProgram(program)
		return nil, err
	}
	v.Program = program
	v.Coord2DAttrib = loc

	return v, nil
}

func (v *GLVars) resolve(program uint32) (uint32, error) {
	loc := v.gl.GetAttribLocation(program, v.AttributeName)
	if loc < 0 {
		return 0, fmt.Errorf("%w %s", ErrAttribute, v.AttributeName)
	}
	return uint32(loc), nil
}

// SetClearColour sets the background every frame is cleared to.
func SetClearColour(g gldriver.GL, colour color.RGBA) {
	bg := utils.ColourVec4(colour)
	g.ClearColor(bg.X(), bg.Y(), bg.Z(), bg.W())
}

// DrawFrame clears the colour buffer and draws the triangle from a
// freshly built host-side vertex array. It does not swap buffers.
func (v *GLVars) DrawFrame() {
	v.gl.Clear(renderconsts.ColorBufferBit)

	v.gl.UseProgram(v.Program)
	v.gl.EnableVertexAttribArray(v.Coord2DAttrib)

	vertices := triangleVertexData()
	v.gl.VertexAttribPointer(v.Coord2DAttrib, 2, renderconsts.Float, false, 0, vertices)
	v.gl.DrawArrays(renderconsts.Triangles, 0, int32(len(TriangleVertices)))
	runtime.KeepAlive(vertices)

	v.gl.DisableVertexAttribArray(v.Coord2DAttrib)
}

// ReplaceProgram swaps in a freshly built program if it exposes the same
// attribute. The old program is deleted on success, the new one on
// failure.
func (v *GLVars) ReplaceProgram(program uint32) error {
	loc, err := v.resolve(program)
	if err != nil {
		v.gl.DeleteProgram(program)
		return err
	}
	v.gl.DeleteProgram(v.Program)
	v.Program = program
	v.Coord2DAttrib = loc
	return nil
}

// Free deletes the program. Only the first call has an effect.
func (v *GLVars) Free() {
	if v.freed {
		return
	}
	v.freed = true
	v.gl.DeleteProgram(v.Program)
	slog.Debug(fmt.Sprintf("deleted program %d", v.Program), slog.String("module", "renderer"))
}

func triangleVertexData() []float32 {
	data := make([]float32, 0, len(TriangleVertices)*2)
	for _, vert := range TriangleVertices {
		data = append(data, vert.X(), vert.Y())
	}
	return data
}
