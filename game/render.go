package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/telemetry"
	"github.com/pthm-cable/wishsky/ui"
)

// Draw renders one frame. Layers: sky, firework trails, snow, branding, modal.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	// Texture-mode pass must happen outside BeginDrawing's default target
	g.fireworkRenderer.Update(g.fireworks)

	sw, sh := int32(g.width), int32(g.height)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.sky.Draw(sw, sh)
	g.fireworkRenderer.Draw()
	g.snowRenderer.Draw(g.snow, g.now)

	g.hud.Draw(ui.HUDData{
		Title:    g.cfg.UI.Title,
		Tagline:  g.cfg.UI.Tagline,
		Hint:     g.cfg.UI.Hint,
		ShowHint: !g.hasInteracted && len(g.wishes) == 0,
		Reveal:   g.brand.Value(),
		Time:     g.now.Sub(g.started).Seconds(),
	}, sw, sh)

	g.drawModal(sw, sh)

	if g.debugMode {
		g.drawDebug()
	}

	rl.EndDrawing()
	g.perfCollector.EndTick()
}

// drawModal renders the open overlay and applies the action it returns.
func (g *Game) drawModal(sw, sh int32) {
	switch g.modal {
	case ModalWishForm:
		switch g.form.Draw(g.uiRenderer, sw, sh) {
		case ui.ActionSubmit:
			if _, err := g.SubmitWish(g.form.Name, g.form.Content); err != nil {
				g.form.Error = err.Error()
			}
		case ui.ActionClose:
			g.CloseModal()
		}

	case ModalSavedWish:
		if (ui.SavedWishView{}).Draw(g.uiRenderer, g.selected, sw, sh) == ui.ActionClose {
			g.CloseModal()
		}

	case ModalBlessing:
		reveal := float32(1)
		if g.blessingReveal != nil {
			reveal = g.blessingReveal.Value()
		}
		if (ui.BlessingView{}).Draw(g.uiRenderer, g.blessingText, reveal, sw, sh) == ui.ActionClose {
			g.CloseModal()
		}
	}
}

func (g *Game) drawDebug() {
	perf := g.perfCollector.Stats()
	g.debugPanel.Draw(ui.DebugData{
		FPS:             rl.GetFPS(),
		Flakes:          len(g.snow.Particles),
		Morphed:         g.snow.MorphedCount(),
		Bursts:          g.fireworks.Count(),
		Particles:       g.fireworks.ParticleCount(),
		Wishes:          len(g.wishes),
		FireworksActive: g.fireworks.Active(),
		Preset:          g.cfg.Derived.Preset,
		FrameMean:       float64(perf.AvgTickDuration.Microseconds()) / 1000,
		FrameP95:        float64(perf.P95TickDuration.Microseconds()) / 1000,
	})
}
