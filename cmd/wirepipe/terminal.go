package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
)

// runTerminal shows the panel in the terminal with half-block cells until
// the user quits or ctx is cancelled.
func runTerminal(ctx context.Context, scene *Scene, cfg *config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Commands from the event reader run on the render loop so the scene
	// is only touched by one goroutine.
	cmds := make(chan func(), 16)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	go func() {
		send := func(f func()) {
			select {
			case cmds <- f:
			case <-ctx.Done():
			}
		}
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				w, h := ev.Width, ev.Height
				send(func() {
					term.Erase()
					term.Resize(w, h)
				})

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					send(func() { scene.Torque(-1, 0) })
				case ev.MatchString("s", "down"):
					send(func() { scene.Torque(1, 0) })
				case ev.MatchString("a", "left"):
					send(func() { scene.Torque(0, -1) })
				case ev.MatchString("d", "right"):
					send(func() { scene.Torque(0, 1) })
				case ev.MatchString("space"):
					send(func() { scene.Spin(rng) })
				case ev.MatchString("r"):
					send(scene.Reset)
				case ev.MatchString("+", "="):
					send(func() { scene.Zoom(-0.5) })
				case ev.MatchString("-", "_"):
					send(func() { scene.Zoom(0.5) })
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					send(scene.ToggleHUD)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(cfg.fps)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

	drain:
		for {
			select {
			case f := <-cmds:
				f()
			default:
				break drain
			}
		}

		now := time.Now()
		scene.Step(now.Sub(lastFrame).Seconds())
		lastFrame = now

		scene.Render()
		scene.FB.Draw(term, scene.FB.TerminalArea(term.Bounds()))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
