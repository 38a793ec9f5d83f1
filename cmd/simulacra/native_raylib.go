//go:build !glfw

package main

import (
	"github.com/rs/zerolog"

	"simulacra/internal/window"
	"simulacra/internal/window/rlsurface"
)

func newNativeSurface(props window.Props, log zerolog.Logger) window.Surface {
	return rlsurface.New(props, log)
}
