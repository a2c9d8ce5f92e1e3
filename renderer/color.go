package renderer

import (
	"github.com/lucasb-eyer/go-colorful"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/components"
)

// withAlpha converts an opaque colour and a [0,1] alpha to a raylib colour.
func withAlpha(c components.RGB, alpha float32) rl.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

// tint blends c toward target in Luv space by t.
func tint(c, target components.RGB, t float64) components.RGB {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(target.R) / 255, G: float64(target.G) / 255, B: float64(target.B) / 255}
	r, g, bl := a.BlendLuv(b, t).Clamped().RGB255()
	return components.RGB{R: r, G: g, B: bl}
}

var (
	white      = components.RGB{R: 255, G: 255, B: 255}
	markerRed  = components.RGB{R: 255, G: 100, B: 100}
	markerGlow = components.RGB{R: 255, G: 0, B: 0}
)
