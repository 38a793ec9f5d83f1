package renderer

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"simulacra/internal/renderer/driverlog"
)

// ErrShaderCompile is returned when the driver rejects a shader; the error text carries the
// driver's last diagnostic line.
var ErrShaderCompile = errors.New("renderer: shader compile/link failed")

// driverDiag holds the driver line shader failures report. raylib logs GL compile and link
// info logs at warning level. The loop is single-threaded, so no locking.
var driverDiag driverlog.Diagnostics

// CaptureDriverLog routes raylib's trace log (including GL shader info logs) into log and
// feeds warning-or-worse lines to driverDiag. Call before opening the window.
func CaptureDriverLog(log zerolog.Logger) {
	rl.SetTraceLogCallback(func(level int, text string) {
		switch {
		case level >= int(rl.LogError):
			driverDiag.Observe(driverlog.Error, text)
			log.Error().Msg(text)
		case level == int(rl.LogWarning):
			driverDiag.Observe(driverlog.Warning, text)
			log.Warn().Msg(text)
		case level == int(rl.LogInfo):
			log.Debug().Msg(text)
		default:
			log.Trace().Msg(text)
		}
	})
}

// Shader is a linked GPU program. It must be unloaded before the graphics context goes away.
type Shader struct {
	program rl.Shader
	loaded  bool
}

// NewShader compiles and links vs and fs. Call only after the window/OpenGL context exists.
func NewShader(vs, fs string) (*Shader, error) {
	driverDiag.Reset()
	program := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(program) {
		diag := driverDiag.Last()
		if diag == "" {
			diag = "no driver diagnostic"
		}
		return nil, fmt.Errorf("%w: %s", ErrShaderCompile, diag)
	}
	return &Shader{program: program, loaded: true}, nil
}

// Bind makes the shader current for subsequent draw calls.
func (s *Shader) Bind() {
	rl.BeginShaderMode(s.program)
}

// Unbind restores raylib's default shader.
func (s *Shader) Unbind() {
	rl.EndShaderMode()
}

// Unload releases the GPU program. Safe to call more than once.
func (s *Shader) Unload() {
	if !s.loaded {
		return
	}
	rl.UnloadShader(s.program)
	s.loaded = false
}
