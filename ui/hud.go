package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	Tagline  string
	Hint     string
	ShowHint bool
	Reveal   float32 // Branding progress in [0, 1]
	Time     float64 // Seconds since start, drives the hint pulse
}

// HUD renders the branding and the first-run hint.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData, screenW, screenH int32) {
	t := h.renderer.Theme
	cx := screenW / 2

	if data.Reveal > 0 {
		// Slides up 48px while fading in
		y := screenH/4 + int32((1-data.Reveal)*48)
		y = h.renderer.DrawCentered(spaced(data.Title), cx, y, t.HeroFontSize, rl.Fade(rl.White, data.Reveal))
		h.renderer.DrawCentered(spaced(data.Tagline), cx, y+8, t.BodyFontSize-2, rl.Fade(t.Accent, 0.8*data.Reveal))
	}

	if data.ShowHint {
		pulse := float32(0.12 + 0.1*(1+math.Sin(data.Time*2))/2)
		h.renderer.DrawCentered(spaced(data.Hint), cx, screenH-48-t.SmallFontSize, t.SmallFontSize, rl.Fade(rl.White, pulse))
	}
}

// spaced inserts a space between letters for tracked-out headings.
func spaced(s string) string {
	out := make([]rune, 0, len(s)*2)
	for i, r := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

// DebugData holds live counters for the debug panel.
type DebugData struct {
	FPS             int32
	Flakes          int
	Morphed         int
	Bursts          int
	Particles       int
	Wishes          int
	FireworksActive bool
	Preset          string
	FrameMean       float64 // milliseconds
	FrameP95        float64
}

// DebugPanel renders engine counters in a corner.
type DebugPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewDebugPanel creates a new debug panel.
func NewDebugPanel(r *Renderer, x, y int32) *DebugPanel {
	return &DebugPanel{renderer: r, x: x, y: y}
}

// Draw renders the panel.
func (p *DebugPanel) Draw(d DebugData) {
	r := p.renderer
	rl.DrawRectangle(p.x-6, p.y-6, 200, 9*r.Theme.LineHeight+12, rl.Color{A: 160})

	y := p.y
	y = r.DrawLabelValue(p.x, y, "FPS", fmt.Sprintf("%d", d.FPS))
	y = r.DrawLabelValue(p.x, y, "Preset", d.Preset)
	y = r.DrawLabelValue(p.x, y, "Flakes", fmt.Sprintf("%d (%d morphed)", d.Flakes, d.Morphed))
	y = r.DrawLabelValue(p.x, y, "Wishes", fmt.Sprintf("%d", d.Wishes))
	y = r.DrawLabelValue(p.x, y, "Bursts", fmt.Sprintf("%d", d.Bursts))
	y = r.DrawLabelValue(p.x, y, "Particles", fmt.Sprintf("%d", d.Particles))
	y = r.DrawLabelValue(p.x, y, "Fireworks", onOff(d.FireworksActive))
	y = r.DrawLabelValue(p.x, y, "Frame", fmt.Sprintf("%.2fms", d.FrameMean))
	r.DrawLabelValue(p.x, y, "Frame p95", fmt.Sprintf("%.2fms", d.FrameP95))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
