package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/dashgl/gltriangle/lib/config"
	"github.com/dashgl/gltriangle/lib/log"
	"github.com/dashgl/gltriangle/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("triangle", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML config file (optional)")
	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Parse(*configPath)
		if err != nil {
			return fail(stderr, err)
		}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fail(stderr, err)
	}
	log.Setup(stderr, level)

	err = viewer.MakeWindowAndDraw(cfg)
	if err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return 1
}
