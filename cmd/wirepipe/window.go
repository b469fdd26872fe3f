//go:build cgo

package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// runWindow shows the panel in a desktop window. It blocks until the window
// closes, Esc is pressed or ctx is cancelled.
func runWindow(ctx context.Context, scene *Scene, cfg *config) error {
	g := &windowGame{
		ctx:   ctx,
		scene: scene,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		dt:    1 / float64(cfg.fps),
	}
	ebiten.SetWindowTitle("wirepipe - " + scene.Mesh.Name)
	ebiten.SetWindowSize(cfg.width*cfg.scale, cfg.height*cfg.scale)
	ebiten.SetTPS(cfg.fps)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type windowGame struct {
	ctx   context.Context
	scene *Scene
	rng   *rand.Rand
	dt    float64
	fbImg *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s := g.scene
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		s.Torque(-1, 0)
	case ebiten.IsKeyPressed(ebiten.KeyS), ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		s.Torque(1, 0)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		s.Torque(0, -1)
	case ebiten.IsKeyPressed(ebiten.KeyD), ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		s.Torque(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Spin(g.rng)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		s.Zoom(-0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		s.Zoom(0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && isHelpKey("/", ebiten.IsKeyPressed(ebiten.KeyShift)) {
		s.ToggleHUD()
	}

	s.Step(g.dt)
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.scene.FB
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}

	g.scene.Render()
	g.fbImg.WritePixels(fb.ToImage().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.FB.Width, g.scene.FB.Height
}
