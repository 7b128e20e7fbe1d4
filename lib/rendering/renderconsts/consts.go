//go:build !gles2

package renderconsts

import (
	"github.com/go-gl/gl/v2.1/gl"
)

const (
	VertexShader   = gl.VERTEX_SHADER
	FragmentShader = gl.FRAGMENT_SHADER
	CompileStatus  = gl.COMPILE_STATUS
	LinkStatus     = gl.LINK_STATUS
	InfoLogLength  = gl.INFO_LOG_LENGTH
	ColorBufferBit = gl.COLOR_BUFFER_BIT
	Triangles      = gl.TRIANGLES
	Float          = gl.FLOAT
	False          = gl.FALSE
	True           = gl.TRUE
)
