package windowsink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dashgl/gltriangle/lib/config"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrContext is returned when no window or GL context could be created.
var ErrContext = errors.New("could not create window")

// WindowSink is a GLFW window with a current GL context. All methods
// except Wake must be called from the thread that called Start.
type WindowSink struct {
	Window *glfw.Window

	cfg config.WindowCfg
}

func New(cfg config.WindowCfg) *WindowSink {
	return &WindowSink{cfg: cfg}
}

func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	window, err := w.makeWindow()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContext, err)
	}
	w.Window = window
	return nil
}

func (w *WindowSink) makeWindow() (*glfw.Window, error) {
	w.log(slog.LevelDebug, "Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	setContextHints()
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	w.log(slog.LevelInfo, "window %q created (%dx%d)", w.cfg.Title, w.cfg.Width, w.cfg.Height)

	return window, nil
}

func (w *WindowSink) SwapBuffers()          { w.Window.SwapBuffers() }
func (w *WindowSink) ShouldClose() bool     { return w.Window.ShouldClose() }
func (w *WindowSink) SetShouldClose(v bool) { w.Window.SetShouldClose(v) }
func (w *WindowSink) WaitEvents()           { glfw.WaitEvents() }
func (w *WindowSink) PollEvents()           { glfw.PollEvents() }

// Wake unblocks a pending WaitEvents. Safe to call from any goroutine.
func (w *WindowSink) Wake() {
	glfw.PostEmptyEvent()
}

// OnRefresh registers f to run whenever the window contents need to be
// redrawn, e.g. after being uncovered.
func (w *WindowSink) OnRefresh(f func()) {
	w.Window.SetRefreshCallback(func(*glfw.Window) {
		f()
	})
}

func (w *WindowSink) Destroy() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
}

func (w *WindowSink) log(level slog.Level, msg string, args ...interface{}) {
	slog.Log(context.Background(), level, fmt.Sprintf(msg, args...), slog.String("module", "window"))
}
