//go:build !cgo

package main

import (
	"context"
	"errors"
)

func runWindow(_ context.Context, _ *Scene, _ *config) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
