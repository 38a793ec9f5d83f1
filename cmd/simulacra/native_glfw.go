//go:build glfw

package main

import (
	"github.com/rs/zerolog"

	"simulacra/internal/window"
	"simulacra/internal/window/glfwsurface"
)

func newNativeSurface(props window.Props, log zerolog.Logger) window.Surface {
	return glfwsurface.New(props, log)
}
