package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dashgl/gltriangle/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultTitle     = "OpenGL Basics"
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultAttribute = "coord2d"
)

type Config struct {
	Window         WindowCfg
	ClearColour    string     `yaml:"clear_colour"`
	TriangleColour string     `yaml:"triangle_colour"`
	Attribute      string     `yaml:"attribute"`
	RenderMode     RenderMode `yaml:"render_mode"`
	LogLevel       string     `yaml:"log_level"`
	Shaders        ShadersCfg
	Api            *ApiCfg
}

type WindowCfg struct {
	Title  string
	Width  int
	Height int
}

type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
	Watch    bool
	DumpDir  CfgPath `yaml:"dump_dir"`
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

type RenderMode string

const (
	// OnDemand redraws only when the window system asks for it.
	OnDemand RenderMode = "on_demand"
	// Continuous redraws on every loop iteration, throttled by vsync.
	Continuous RenderMode = "continuous"
)

func (m *RenderMode) UnmarshalYAML(b []byte) error {
	var s string
	err := yaml.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	switch RenderMode(s) {
	case OnDemand, Continuous:
		*m = RenderMode(s)
		return nil
	default:
		return fmt.Errorf("unknown render mode: %s", s)
	}
}

// Default returns the configuration that reproduces the classic
// white-background, blue-triangle window.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		ClearColour:    "#ffffffff",
		TriangleColour: "#0000ffff",
		Attribute:      DefaultAttribute,
		RenderMode:     OnDemand,
		LogLevel:       "info",
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := Default()
	err = m.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// no document at all, the decoder has zeroed cfg
		cfg = Default()
	} else if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("clear_colour %s is not a valid RGBA hex colour", c.ClearColour)
	}
	if !utils.ColourValidate(c.TriangleColour) {
		return fmt.Errorf("triangle_colour %s is not a valid RGBA hex colour", c.TriangleColour)
	}
	if c.Attribute == "" {
		return fmt.Errorf("attribute must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders config is invalid: %w", err)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be specified when the api section is present")
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	if s.Watch && s.Vertex == "" && s.Fragment == "" {
		return fmt.Errorf("cannot watch shaders without a vertex or fragment override")
	}
	return nil
}

// WatchPaths returns the override files that should trigger a reload.
func (s *ShadersCfg) WatchPaths() []string {
	var paths []string
	for _, p := range []CfgPath{s.Vertex, s.Fragment} {
		if p != "" {
			paths = append(paths, string(p))
		}
	}
	return paths
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Window:\n  %q %dx%d\n", c.Window.Title, c.Window.Width, c.Window.Height)
	fmt.Fprintf(&b, "\nColours:\n  clear %s\n  triangle %s\n", c.ClearColour, c.TriangleColour)
	fmt.Fprintf(&b, "\nAttribute: %s\nRender mode: %s\n", c.Attribute, c.RenderMode)

	b.WriteString("\nShaders:\n")
	if c.Shaders.Vertex != "" {
		fmt.Fprintf(&b, "  vertex %s\n", c.Shaders.Vertex)
	} else {
		b.WriteString("  vertex (builtin)\n")
	}
	if c.Shaders.Fragment != "" {
		fmt.Fprintf(&b, "  fragment %s\n", c.Shaders.Fragment)
	} else {
		b.WriteString("  fragment (builtin)\n")
	}
	if c.Shaders.Watch {
		b.WriteString("  watching for changes\n")
	}

	if c.Api != nil {
		fmt.Fprintf(&b, "\nApi:\n  %s\n", c.Api.Bind)
	}

	return b.String()
}
