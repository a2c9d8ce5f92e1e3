package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/telemetry"
	"github.com/pthm-cable/wishsky/ui"
)

// maxFrameDelta caps wall-clock frame time so a stalled window does not
// skip the firework window in one step.
const maxFrameDelta = 100 * time.Millisecond

// Update runs one windowed frame: input, then simulation.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	g.advance(dt)
}

// UpdateHeadless runs one fixed-step frame without raylib.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	if g.demo != nil {
		g.perfCollector.StartPhase(telemetry.PhaseInput)
		g.demo.step(g)
	}
	g.advance(g.dt)
	g.perfCollector.EndTick()
}

// advance moves the session forward by dt. Engines step once per call.
func (g *Game) advance(dt time.Duration) {
	g.now = g.now.Add(dt)
	g.frame++

	g.perfCollector.StartPhase(telemetry.PhaseSnow)
	g.snow.Update()

	g.perfCollector.StartPhase(telemetry.PhaseFireworks)
	g.expireFireworkWindow()
	g.fireworks.Update(dt)

	g.perfCollector.StartPhase(telemetry.PhaseSession)
	g.drainBlessings()
	if g.hasInteracted || len(g.wishes) > 0 {
		g.brand.Start()
	}
	g.brand.Step()
	if g.blessingReveal != nil {
		g.blessingReveal.Step()
	}

	g.collector.RecordMorphed(g.snow.MorphedCount())
	g.flushTelemetry()
}

func newBlessingReveal(fps int) *ui.Reveal {
	if fps <= 0 {
		fps = 60
	}
	return ui.NewReveal(fps, 1)
}

// flushTelemetry emits a stats window when one is complete.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.frame) {
		return
	}

	stats := g.collector.Flush(g.frame, telemetry.Snapshot{
		Wishes:          len(g.wishes),
		Bursts:          g.fireworks.Count(),
		Particles:       g.fireworks.ParticleCount(),
		BurstsSpawned:   g.fireworks.Spawned(),
		FireworksActive: g.fireworks.Active(),
	})
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		slog.Info("session", "stats", stats)
		slog.Info("perf", "stats", perfStats)
	}

	if err := g.outputManager.WriteSession(stats); err != nil {
		slog.Error("failed to write session", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
