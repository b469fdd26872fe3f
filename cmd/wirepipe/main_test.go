package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/wirepipe/pkg/render"
)

// parseFlags runs the command line without starting a viewer.
func parseFlags(args []string) (*config, error) {
	var got *config
	cmd := newRootCmd(func(_ context.Context, cfg *config) error {
		got = cfg
		return nil
	})
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	return got, nil
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.mode != "terminal" || cfg.width != 128 || cfg.height != 64 {
		t.Errorf("defaults = %s %dx%d", cfg.mode, cfg.width, cfg.height)
	}
	if cfg.fg != render.ColorPhosphor || cfg.fgSet {
		t.Errorf("fg = %v (set %v), want phosphor default", cfg.fg, cfg.fgSet)
	}
	if cfg.bg != render.ColorBlack {
		t.Errorf("bg = %v, want black", cfg.bg)
	}
	if cfg.modelPath != "" {
		t.Errorf("modelPath = %q, want empty", cfg.modelPath)
	}
}

func TestParseFlagsModelPath(t *testing.T) {
	cfg, err := parseFlags([]string{"--hud", "ship.glb"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.modelPath != "ship.glb" || !cfg.hud {
		t.Errorf("modelPath = %q hud = %v", cfg.modelPath, cfg.hud)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"png", []string{"--mode", "png", "-o", "x.png", "model.glb"}, false},
		{"short flags", []string{"-m", "window", "-v"}, false},
		{"colors", []string{"--fg", "255,0,0", "--bg", "1,2,3"}, false},
		{"bad mode", []string{"--mode", "vga"}, true},
		{"bad fg", []string{"--fg", "red"}, true},
		{"bad bg", []string{"--bg", "1,2"}, true},
		{"tiny panel", []string{"--width", "1"}, true},
		{"zero fps", []string{"--fps", "0"}, true},
		{"zero scale", []string{"--mode", "window", "--scale", "0"}, true},
		{"negative scale", []string{"--scale", "-2"}, true},
		{"two models", []string{"a.glb", "b.glb"}, true},
		{"unknown flag", []string{"--nope"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseFlags(tc.args)
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseFlagsColors(t *testing.T) {
	cfg, err := parseFlags([]string{"--fg", "255,0,0"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.fgSet || cfg.fg != render.ColorRed {
		t.Errorf("fg = %v (set %v), want red", cfg.fg, cfg.fgSet)
	}
}

func TestLoadModel(t *testing.T) {
	mesh, err := loadModel("")
	if err != nil {
		t.Fatalf("loadModel(\"\"): %v", err)
	}
	if mesh.Name != "cube" {
		t.Errorf("default model = %q, want cube", mesh.Name)
	}

	if _, err := loadModel("model.obj"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := loadModel(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	cfg, err := parseFlags([]string{"--mode", "png", "--out", out, "--scale", "2", "--hud"})
	if err != nil {
		t.Fatal(err)
	}

	mesh, err := loadModel(cfg.modelPath)
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene(mesh, cfg.width, cfg.height, cfg.fps, cfg.fg, cfg.bg)
	scene.ShowHUD = cfg.hud
	if err := runPNG(scene, cfg); err != nil {
		t.Fatalf("runPNG: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output is empty")
	}
	if scene.Pipeline().Stats.Accepted == 0 {
		t.Error("no segments were drawn")
	}
}
