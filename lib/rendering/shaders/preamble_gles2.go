//go:build gles2

package shaders

// GLSLPreamble opens every shader: GLSL ES 1.00, which has no default
// float precision in fragment shaders.
const GLSLPreamble = "#version 100\nprecision mediump float;\n"
