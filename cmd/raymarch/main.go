// Command raymarch is the CLI wrapper around the renderer: it takes a
// scene file, builds the scene graph, and runs every render target it
// declares. Exit codes distinguish parse/build failures from I/O
// failures from internal errors so calling scripts can react accordingly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/galvanized/raymarch/config"
	"github.com/galvanized/raymarch/internal/sexpr"
	"github.com/galvanized/raymarch/march"
	"github.com/galvanized/raymarch/render"
	"github.com/galvanized/raymarch/scene"
)

const (
	exitOK            = 0
	exitParseOrBuild  = 1
	exitIO            = 2
	exitInternalError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("raymarch", flag.ContinueOnError)
	threads := fs.Int("threads", 0, "worker pool size (default: logical CPUs)")
	configPath := fs.String("config", "", "optional YAML config file")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return exitParseOrBuild
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: raymarch [-threads N] [-config path] [-v] <scene-file>")
		return exitParseOrBuild
	}
	scenePath := fs.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			return exitIO
		}
		cfg = loaded
	}
	march.Configure(march.Limits{MaxSteps: cfg.MaxSteps, MaxDistance: cfg.MaxDistance})

	store, err := buildScene(scenePath, logger)
	if err != nil {
		logger.Error("failed to build scene", "error", err)
		return exitParseOrBuild
	}

	n := *threads
	if n == 0 {
		n = cfg.Threads
	}
	if n == 0 {
		n = runtime.NumCPU()
	}

	opts := render.Options{
		Threads:   n,
		TileSize:  cfg.TileSize,
		AsciiRamp: cfg.AsciiRamp,
		Logger:    logger,
	}

	if err := render.RunAll(store, opts); err != nil {
		if isIOError(err) {
			logger.Error("render I/O failure", "error", err)
			return exitIO
		}
		logger.Error("render failed", "error", err)
		return exitInternalError
	}

	return exitOK
}

func buildScene(path string, logger *slog.Logger) (*scene.Store, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	forms, err := sexpr.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	store, err := scene.Build(forms, logger)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	return store, nil
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
