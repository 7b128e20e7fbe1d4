package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dashgl/gltriangle/lib/config"
	"github.com/dashgl/gltriangle/lib/metrics"
	"github.com/dashgl/gltriangle/lib/rendering"
	"github.com/dashgl/gltriangle/lib/rendering/gldriver"
	"github.com/dashgl/gltriangle/lib/rendering/shaders"
	"github.com/dashgl/gltriangle/lib/stats"
	"github.com/dashgl/gltriangle/lib/utils"
)

// Surface is the window the viewer draws into. Only Wake may be called
// from a goroutine other than the render thread.
type Surface interface {
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
	WaitEvents()
	PollEvents()
	Wake()
	OnRefresh(func())
}

// Viewer owns the GL resources of the triangle and the loop that draws
// it. Init, Run and the draw callbacks all run on the render thread;
// the Request methods may be called from anywhere.
type Viewer struct {
	cfg     *config.Config
	gl      gldriver.GL
	surface Surface
	glvars  *rendering.GLVars

	Stats *stats.Stats

	shutdown atomic.Bool
	reload   atomic.Bool
	redraw   atomic.Bool

	deltaTimer utils.DeltaTimer
}

func New(cfg *config.Config, g gldriver.GL, surface Surface) *Viewer {
	return &Viewer{
		cfg:     cfg,
		gl:      g,
		surface: surface,
		Stats:   stats.New(),
	}
}

// Init builds the shader program and resolves its position attribute.
// Nothing is left allocated on the GPU when it fails.
func (v *Viewer) Init() error {
	rendering.SetClearColour(v.gl, utils.ColourParse(v.cfg.ClearColour))

	program, err := v.buildProgram()
	if err != nil {
		metrics.InitFailures.WithLabelValues(stage(err)).Inc()
		return fmt.Errorf("could not initialize resources: %w", err)
	}

	glvars, err := rendering.NewGLVars(v.gl, program, v.cfg.Attribute)
	if err != nil {
		metrics.InitFailures.WithLabelValues(stage(err)).Inc()
		return fmt.Errorf("could not initialize resources: %w", err)
	}
	v.glvars = glvars

	v.log(slog.LevelInfo, "program %d ready, %s at location %d", glvars.Program, glvars.AttributeName, glvars.Coord2DAttrib)
	return nil
}

func (v *Viewer) buildProgram() (uint32, error) {
	shaderer, err := shaders.NewShaderer(string(v.cfg.Shaders.Vertex), string(v.cfg.Shaders.Fragment))
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}

	colour := utils.ColourVec4(utils.ColourParse(v.cfg.TriangleColour))
	src, err := shaderer.Sources(shaders.NewShaderData(colour))
	if err != nil {
		return 0, err
	}

	if v.cfg.Shaders.DumpDir != "" {
		err = shaders.DumpSources(string(v.cfg.Shaders.DumpDir), src)
		if err != nil {
			v.log(slog.LevelWarn, "%s", err)
		}
	}

	return shaders.BuildGLProgram(v.gl, src)
}

// Run draws the first frame and then services window events until the
// window is closed or a shutdown is requested. The program is deleted
// before Run returns. Init must have succeeded.
func (v *Viewer) Run() {
	defer v.glvars.Free()

	v.surface.OnRefresh(v.draw)
	v.draw()

	continuous := v.cfg.RenderMode == config.Continuous
	for !v.surface.ShouldClose() && !v.shutdown.Load() {
		if continuous {
			v.surface.PollEvents()
		} else {
			v.surface.WaitEvents()
		}

		if v.shutdown.Load() {
			break
		}
		if v.reload.Swap(false) {
			v.reloadProgram()
			v.redraw.Store(true)
		}
		if v.redraw.Swap(false) || continuous {
			v.draw()
		}
	}
	if v.shutdown.Load() {
		v.surface.SetShouldClose(true)
	}

	v.log(slog.LevelInfo, "window closed after %d frames", v.Stats.Snapshot().Frames)
}

func (v *Viewer) draw() {
	v.glvars.DrawFrame()
	v.surface.SwapBuffers()

	v.Stats.Update(v.deltaTimer.Next())
	metrics.FramesDrawn.Inc()
}

func (v *Viewer) reloadProgram() {
	program, err := v.buildProgram()
	if err == nil {
		err = v.glvars.ReplaceProgram(program)
	}
	if err != nil {
		metrics.ProgramReloads.WithLabelValues("failed").Inc()
		v.log(slog.LevelError, "keeping current program, reload failed: %s", err)
		return
	}
	metrics.ProgramReloads.WithLabelValues("ok").Inc()
	v.Stats.Reloaded()
	v.log(slog.LevelInfo, "reloaded shaders into program %d", program)
}

func (v *Viewer) RequestShutdown() {
	v.shutdown.Store(true)
	v.surface.Wake()
}

func (v *Viewer) RequestReload() {
	v.reload.Store(true)
	v.surface.Wake()
}

func (v *Viewer) RequestRedraw() {
	v.redraw.Store(true)
	v.surface.Wake()
}

// Config is the configuration the viewer was started with.
func (v *Viewer) Config() *config.Config {
	return v.cfg
}

func (v *Viewer) log(level slog.Level, msg string, args ...interface{}) {
	slog.Log(context.Background(), level, fmt.Sprintf(msg, args...), slog.String("module", "viewer"))
}

func stage(err error) string {
	switch {
	case errors.Is(err, shaders.ErrVertexShader):
		return "vertex_shader"
	case errors.Is(err, shaders.ErrFragmentShader):
		return "fragment_shader"
	case errors.Is(err, shaders.ErrLink):
		return "link"
	case errors.Is(err, rendering.ErrAttribute):
		return "attribute"
	default:
		return "shader_source"
	}
}
