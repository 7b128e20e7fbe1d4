// Package gldriver is the thin seam between the renderer and the GL
// bindings. Everything above it talks to the GL interface so it can be
// exercised without a context.
package gldriver

// GL is the subset of OpenGL 2.0 / GLES 2.0 the renderer uses.
// Method semantics follow the GL functions of the same name.
type GL interface {
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	// VertexAttribPointer sources the attribute from host memory. data
	// must stay alive until the draw call that consumes it returns.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, data []float32)
	DrawArrays(mode uint32, first, count int32)
}
