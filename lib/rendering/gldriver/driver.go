//go:build !gles2

package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
)

// Driver implements GL on top of the desktop OpenGL 2.1 bindings.
type Driver struct{}

func loadFunctions() error {
	return gl.Init()
}

func (d *Driver) Version() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }
func (d *Driver) Vendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (d *Driver) Renderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }

func (d *Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (d *Driver) Clear(mask uint32)             { gl.Clear(mask) }

func (d *Driver) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (d *Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (d *Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Driver) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return strings.TrimRight(clog, "\x00")
}

func (d *Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Driver) CreateProgram() uint32                 { return gl.CreateProgram() }
func (d *Driver) AttachShader(program, shader uint32)   { gl.AttachShader(program, shader) }
func (d *Driver) DetachShader(program, shader uint32)   { gl.DetachShader(program, shader) }
func (d *Driver) LinkProgram(program uint32)            { gl.LinkProgram(program) }
func (d *Driver) UseProgram(program uint32)             { gl.UseProgram(program) }
func (d *Driver) DeleteProgram(program uint32)          { gl.DeleteProgram(program) }
func (d *Driver) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (d *Driver) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (d *Driver) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return strings.TrimRight(logmsg, "\x00")
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, data []float32) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.Ptr(data))
}

func (d *Driver) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }
