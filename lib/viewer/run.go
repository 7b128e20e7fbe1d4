package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dashgl/gltriangle/lib/api"
	"github.com/dashgl/gltriangle/lib/config"
	"github.com/dashgl/gltriangle/lib/kbdctl"
	"github.com/dashgl/gltriangle/lib/metrics"
	"github.com/dashgl/gltriangle/lib/rendering/gldriver"
	"github.com/dashgl/gltriangle/lib/rendering/shaders"
	"github.com/dashgl/gltriangle/lib/sink/windowsink"
)

// MakeWindowAndDraw opens the window, initialises GL and the triangle's
// resources and runs until the window is closed. It must be called from
// the main, OS-locked thread. A non-nil error means nothing was rendered.
func MakeWindowAndDraw(cfg *config.Config) error {
	windowSink := windowsink.New(cfg.Window)
	err := windowSink.Start()
	if err != nil {
		metrics.InitFailures.WithLabelValues("context").Inc()
		return err
	}
	defer windowSink.Destroy()

	driver, err := gldriver.Init()
	if err != nil {
		metrics.InitFailures.WithLabelValues("loader").Inc()
		return err
	}

	v := New(cfg, driver, windowSink)
	err = v.Init()
	if err != nil {
		return err
	}

	v.log(slog.LevelInfo, "drawing %s", v)
	kbdctl.SetupShortcutKeys(windowSink, v)

	stopSignals := v.handleSignals()
	defer stopSignals()

	theApi := api.ServeInBackground(cfg.Api, v, v.Stats)
	if theApi != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = theApi.Shutdown(ctx)
		}()
	}

	if cfg.Shaders.Watch {
		watcher, err := shaders.Watch(cfg.Shaders.WatchPaths(), func(path string) {
			v.RequestReload()
		})
		if err != nil {
			v.log(slog.LevelWarn, "not watching shaders: %s", err)
		} else {
			defer func() {
				err := watcher.Close()
				if err != nil {
					v.log(slog.LevelWarn, "shader watcher: %s", err)
				}
			}()
		}
	}

	v.Run()
	return nil
}

// String describes the loop mode for the startup log line.
func (v *Viewer) String() string {
	return fmt.Sprintf("%s %dx%d, %s", v.cfg.Window.Title, v.cfg.Window.Width, v.cfg.Window.Height, v.cfg.RenderMode)
}
