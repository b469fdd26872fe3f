package main

import (
	"fmt"
	"math"

	"github.com/taigrr/wirepipe/pkg/logging"
)

// runPNG renders a single frame at the configured pose and saves it.
func runPNG(scene *Scene, cfg *config) error {
	scene.Rotation.Pitch.Position = cfg.pitch * math.Pi / 180
	scene.Rotation.Yaw.Position = cfg.yaw * math.Pi / 180

	if !scene.Render() {
		logging.Logger().Warn("model is outside the view", "name", scene.Mesh.Name)
	}

	if err := scene.FB.SavePNG(cfg.out, cfg.scale); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}

	st := scene.Pipeline().Stats
	logging.Logger().Info("frame written",
		"path", cfg.out,
		"accepted", st.Accepted,
		"clipped", st.Clipped,
		"rejected", st.Rejected)
	return nil
}
