package kbdctl

import (
	"log/slog"

	"github.com/dashgl/gltriangle/lib/sink/windowsink"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Controller receives the requests keyboard shortcuts can make.
type Controller interface {
	RequestShutdown()
	RequestReload()
}

func SetupShortcutKeys(ws *windowsink.WindowSink, c Controller) {
	ws.Window.SetKeyCallback(keyCallback(c))
}

func keyCallback(c Controller) func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			if key == glfw.KeyEscape ||
				(key == glfw.KeyQ &&
					mods&glfw.ModControl != 0 &&
					mods&glfw.ModShift != 0) {
				slog.Info("told to quit, exiting", slog.String("module", "kbdctl"))
				c.RequestShutdown()
			}
		}
		if action == glfw.Press && key == glfw.KeyR {
			slog.Info("reloading shaders", slog.String("module", "kbdctl"))
			c.RequestReload()
		}
	}
}
