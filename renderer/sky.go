package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/components"
)

// SkyRenderer paints the night sky backdrop as a vertical gradient.
type SkyRenderer struct {
	top, bottom rl.Color
}

// NewSkyRenderer creates a backdrop from the zenith and horizon colours.
func NewSkyRenderer(top, bottom components.RGB) *SkyRenderer {
	return &SkyRenderer{
		top:    withAlpha(top, 1),
		bottom: withAlpha(bottom, 1),
	}
}

// Draw fills the viewport.
func (s *SkyRenderer) Draw(width, height int32) {
	rl.DrawRectangleGradientV(0, 0, width, height, s.top, s.bottom)
}
