//go:build !gles2

package windowsink

import "github.com/go-gl/glfw/v3.3/glfw"

func setContextHints() {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
}
