//go:build gles2

package renderconsts

import (
	"github.com/go-gl/gl/v3.1/gles2"
)

const (
	VertexShader   = gles2.VERTEX_SHADER
	FragmentShader = gles2.FRAGMENT_SHADER
	CompileStatus  = gles2.COMPILE_STATUS
	LinkStatus     = gles2.LINK_STATUS
	InfoLogLength  = gles2.INFO_LOG_LENGTH
	ColorBufferBit = gles2.COLOR_BUFFER_BIT
	Triangles      = gles2.TRIANGLES
	Float          = gles2.FLOAT
	False          = gles2.FALSE
	True           = gles2.TRUE
)
