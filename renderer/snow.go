package renderer

import (
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
	"github.com/pthm-cable/wishsky/systems"
)

// SnowRenderer draws the snow field: plain flakes as glowing discs, morphed
// flakes and settled wishes as crystal ornaments.
type SnowRenderer struct {
	snow    config.SnowConfig
	markers config.MarkerConfig

	segs []systems.Segment // Reused per ornament
}

// NewSnowRenderer creates a renderer for the given tuning.
func NewSnowRenderer(cfg *config.Config) *SnowRenderer {
	return &SnowRenderer{
		snow:    cfg.Snow,
		markers: cfg.Markers,
		segs:    make([]systems.Segment, 0, 18),
	}
}

// Draw renders flakes, then the settled row with name labels.
func (r *SnowRenderer) Draw(field *systems.SnowField, now time.Time) {
	flakeGlow := withAlpha(white, 0)
	for i := range field.Particles {
		p := &field.Particles[i]
		pos := rl.Vector2{X: p.X, Y: p.Y}

		if p.Morphed {
			r.drawOrnament(p.X, p.Y, p.Radius*float32(r.snow.MorphScale), p.Angle, 0.95, white, white)
			continue
		}

		rl.DrawCircleGradient(int32(p.X), int32(p.Y), p.Radius*3, withAlpha(white, p.Opacity*0.35), flakeGlow)
		rl.DrawCircleV(pos, p.Radius, withAlpha(white, p.Opacity))
	}

	wishes := field.Wishes()
	phase := systems.MarkerPhase(now, r.markers)
	labelColor := withAlpha(white, 0.6)
	fontSize := int32(r.markers.LabelSize)

	for i, m := range field.Markers() {
		r.drawOrnament(m.X, m.Y, float32(r.markers.Radius), phase, 1, markerRed, markerGlow)

		label := strings.ToUpper(wishes[i].Name)
		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label, int32(m.X)-w/2, int32(m.Y+float32(r.markers.LabelOffset)), fontSize, labelColor)
	}
}

// drawOrnament strokes the crystal with a soft halo behind it.
func (r *SnowRenderer) drawOrnament(x, y, radius, angle, alpha float32, stroke, glow components.RGB) {
	rl.DrawCircleGradient(int32(x), int32(y), radius*5, withAlpha(glow, alpha*0.25), withAlpha(glow, 0))

	color := withAlpha(stroke, alpha)
	r.segs = systems.OrnamentSegments(r.segs[:0], x, y, radius, angle)
	for _, s := range r.segs {
		rl.DrawLineEx(rl.Vector2{X: s.A.X, Y: s.A.Y}, rl.Vector2{X: s.B.X, Y: s.B.Y}, 1, color)
	}
}
