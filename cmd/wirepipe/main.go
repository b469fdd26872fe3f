// wirepipe - 3D Wireframe Viewer for Small Displays
// Draws a model through the four-stage line pipeline onto a virtual
// 128x64 panel, shown in the terminal, in a desktop window or saved as PNG.
//
// Controls:
//
//	W/S, Up/Down     - Pitch
//	A/D, Left/Right  - Yaw
//	Space            - Apply random impulse
//	R                - Reset view
//	+/-              - Zoom in/out
//	?                - Toggle HUD overlay
//	Esc              - Quit
package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/wirepipe/pkg/logging"
	"github.com/taigrr/wirepipe/pkg/models"
	"github.com/taigrr/wirepipe/pkg/render"
)

type config struct {
	mode      string
	width     int
	height    int
	fps       int
	fgStr     string
	bgStr     string
	fg, bg    color.RGBA
	fgSet     bool
	out       string
	scale     int
	yaw       float64
	pitch     float64
	hud       bool
	verbose   bool
	logPath   string
	modelPath string
}

const controlsHelp = `Without a model a cube is shown.

Controls:
  W/S/A/D     - Pitch and yaw (or arrow keys)
  Space       - Random spin
  R           - Reset view
  +/-         - Zoom
  ?           - Toggle HUD overlay
  Esc         - Quit`

// newRootCmd builds the command line. run is called with the validated
// configuration.
func newRootCmd(run func(ctx context.Context, cfg *config) error) *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:          "wirepipe [model.glb]",
		Short:        "3D wireframe viewer for small displays",
		Long:         "Draws a model through the four-stage line pipeline onto a virtual panel,\nshown in the terminal, in a desktop window or saved as PNG.\n\n" + controlsHelp,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.finish(args); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.mode, "mode", "m", "terminal", "Output: terminal, window or png")
	f.IntVar(&cfg.width, "width", 128, "Panel width in pixels")
	f.IntVar(&cfg.height, "height", 64, "Panel height in pixels")
	f.IntVar(&cfg.fps, "fps", 30, "Target FPS")
	f.StringVar(&cfg.fgStr, "fg", "", "Line color (R,G,B); defaults to the model's color or phosphor green")
	f.StringVar(&cfg.bgStr, "bg", "0,0,0", "Background color (R,G,B)")
	f.StringVarP(&cfg.out, "out", "o", "wirepipe.png", "Output path for png mode")
	f.IntVar(&cfg.scale, "scale", 4, "Pixel scale for png and window modes")
	f.Float64Var(&cfg.yaw, "yaw", 30, "Initial yaw in degrees (png mode)")
	f.Float64Var(&cfg.pitch, "pitch", 20, "Initial pitch in degrees (png mode)")
	f.BoolVar(&cfg.hud, "hud", false, "Show the HUD overlay")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "Debug logging")
	f.StringVar(&cfg.logPath, "log", "", "Write logs to this file instead of stderr")

	return cmd
}

// finish validates the flags and parses derived values.
func (cfg *config) finish(args []string) error {
	switch cfg.mode {
	case "terminal", "window", "png":
	default:
		return fmt.Errorf("unknown mode %q (use terminal, window or png)", cfg.mode)
	}
	if cfg.width < 2 || cfg.height < 2 {
		return fmt.Errorf("panel must be at least 2x2, got %dx%d", cfg.width, cfg.height)
	}
	if cfg.fps < 1 {
		return fmt.Errorf("fps must be positive, got %d", cfg.fps)
	}
	if cfg.scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", cfg.scale)
	}
	if len(args) > 0 {
		cfg.modelPath = args[0]
	}

	var err error
	cfg.fg = render.ColorPhosphor
	if cfg.fgStr != "" {
		cfg.fgSet = true
		if cfg.fg, err = render.ParseRGB(cfg.fgStr); err != nil {
			return fmt.Errorf("--fg: %w", err)
		}
	}
	if cfg.bg, err = render.ParseRGB(cfg.bgStr); err != nil {
		return fmt.Errorf("--bg: %w", err)
	}
	return nil
}

func main() {
	// Context for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, newRootCmd(run))
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg *config) (io.Closer, error) {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if cfg.logPath != "" {
		f, err := os.Create(cfg.logPath)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		w, closer = f, f
	} else if cfg.mode == "terminal" && !cfg.verbose {
		// Logs would scribble over the alt screen.
		w = io.Discard
	}

	logging.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

// loadModel loads path, or returns the built-in cube when path is empty.
func loadModel(path string) (*models.Mesh, error) {
	if path == "" {
		return models.NewCube(2), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		if len(mesh.Vertices) == 0 {
			return nil, fmt.Errorf("load model: %s has no drawable geometry", filepath.Base(path))
		}
		return mesh, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

func run(ctx context.Context, cfg *config) error {
	closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	mesh, err := loadModel(cfg.modelPath)
	if err != nil {
		return err
	}
	logging.Logger().Info("model loaded",
		"name", mesh.Name,
		"vertices", mesh.VertexCount(),
		"edges", len(mesh.Edges()))

	scene := NewScene(mesh, cfg.width, cfg.height, cfg.fps, cfg.fg, cfg.bg)
	scene.MeshColor = !cfg.fgSet
	scene.ShowHUD = cfg.hud

	switch cfg.mode {
	case "png":
		return runPNG(scene, cfg)
	case "window":
		return runWindow(ctx, scene, cfg)
	default:
		return runTerminal(ctx, scene, cfg)
	}
}
