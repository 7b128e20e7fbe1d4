package kbdctl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	shutdowns int
	reloads   int
}

func (r *recorder) RequestShutdown() { r.shutdowns++ }
func (r *recorder) RequestReload()   { r.reloads++ }

func TestKeyCallback(t *testing.T) {
	tests := []struct {
		name      string
		key       glfw.Key
		action    glfw.Action
		mods      glfw.ModifierKey
		shutdowns int
		reloads   int
	}{
		{"escape", glfw.KeyEscape, glfw.Release, 0, 1, 0},
		{"escape press only", glfw.KeyEscape, glfw.Press, 0, 0, 0},
		{"ctrl shift q", glfw.KeyQ, glfw.Release, glfw.ModControl | glfw.ModShift, 1, 0},
		{"plain q", glfw.KeyQ, glfw.Release, 0, 0, 0},
		{"ctrl q", glfw.KeyQ, glfw.Release, glfw.ModControl, 0, 0},
		{"r", glfw.KeyR, glfw.Press, 0, 0, 1},
		{"other", glfw.KeyA, glfw.Press, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			keyCallback(r)(nil, tt.key, 0, tt.action, tt.mods)
			assert.Equal(t, tt.shutdowns, r.shutdowns)
			assert.Equal(t, tt.reloads, r.reloads)
		})
	}
}
