package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Flat-colour triangle shader. Attribute and uniform names are raylib's defaults.
const (
	triangleVS = `#version 330
in vec3 vertexPosition;
uniform mat4 mvp;
void main() {
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	triangleFS = `#version 330
out vec4 finalColor;
void main() {
  finalColor = vec4(0.8, 0.2, 0.3, 1.0);
}
`
)

// triangleVertices are in normalized device coordinates: bottom-left, bottom-right, top.
var triangleVertices = [3][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.0, 0.5}}

// ClearColor is the frame background (0.1, 0.1, 0.1).
var ClearColor = rl.NewColor(26, 26, 26, 255)

// Triangle is the engine's test geometry: one triangle centred on screen, drawn with its own shader.
type Triangle struct {
	shader *Shader
}

// NewTriangle compiles the triangle shader. Call only after the window/OpenGL context exists.
func NewTriangle() (*Triangle, error) {
	s, err := NewShader(triangleVS, triangleFS)
	if err != nil {
		return nil, err
	}
	return &Triangle{shader: s}, nil
}

// Draw draws the triangle scaled to the current screen size. Call between BeginDrawing and EndDrawing.
func (t *Triangle) Draw() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	var v [3]rl.Vector2
	for i, p := range triangleVertices {
		// NDC to screen space: y grows downwards.
		v[i] = rl.NewVector2((p[0]+1)*0.5*w, (1-p[1])*0.5*h)
	}
	t.shader.Bind()
	// raylib wants counter-clockwise order on screen: top, bottom-left, bottom-right.
	rl.DrawTriangle(v[2], v[0], v[1], rl.White)
	t.shader.Unbind()
}

// Unload releases the shader.
func (t *Triangle) Unload() {
	t.shader.Unload()
}
