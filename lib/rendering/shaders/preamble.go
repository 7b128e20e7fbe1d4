//go:build !gles2

package shaders

// GLSLPreamble opens every shader: GLSL 1.20, the OpenGL 2.1 dialect.
const GLSLPreamble = "#version 120\n"
