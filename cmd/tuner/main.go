// Firework and snow tuning tool - live preview with sliders.
//
// Usage: go run ./cmd/tuner [-preset ember]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/config"
	"github.com/pthm-cable/wishsky/renderer"
	"github.com/pthm-cable/wishsky/systems"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	previewWidth = 880
	panelWidth   = windowWidth - previewWidth - 30
)

// slider describes one tunable value.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(*config.Config) float32
	set      func(*config.Config, float32)
}

var sliders = []slider{
	{"Trail fade", 0.05, 0.4, "%.2f",
		func(c *config.Config) float32 { return float32(c.Firework.TrailFade) },
		func(c *config.Config, v float32) { c.Firework.TrailFade = float64(v) }},
	{"Spawn interval (ms)", 200, 2000, "%.0f",
		func(c *config.Config) float32 { return float32(c.Firework.SpawnIntervalMS) },
		func(c *config.Config, v float32) { c.Firework.SpawnIntervalMS = int(v) }},
	{"History length", 0, 30, "%.0f",
		func(c *config.Config) float32 { return float32(c.Firework.HistoryLength) },
		func(c *config.Config, v float32) { c.Firework.HistoryLength = int(v) }},
	{"Streak count", 0, 150, "%.0f",
		func(c *config.Config) float32 { return float32(c.Firework.Streak.Count) },
		func(c *config.Config, v float32) { c.Firework.Streak.Count = int(v) }},
	{"Streak speed max", 4, 20, "%.1f",
		func(c *config.Config) float32 { return float32(c.Firework.Streak.SpeedMax) },
		func(c *config.Config, v float32) { c.Firework.Streak.SpeedMax = float64(v) }},
	{"Streak gravity", 0, 0.3, "%.3f",
		func(c *config.Config) float32 { return float32(c.Firework.Streak.Gravity) },
		func(c *config.Config, v float32) { c.Firework.Streak.Gravity = float64(v) }},
	{"Streak friction", 0.85, 1, "%.3f",
		func(c *config.Config) float32 { return float32(c.Firework.Streak.Friction) },
		func(c *config.Config, v float32) { c.Firework.Streak.Friction = float64(v) }},
	{"Spark count", 0, 120, "%.0f",
		func(c *config.Config) float32 { return float32(c.Firework.Spark.Count) },
		func(c *config.Config, v float32) { c.Firework.Spark.Count = int(v) }},
	{"Orb count", 0, 12, "%.0f",
		func(c *config.Config) float32 { return float32(c.Firework.Orb.Count) },
		func(c *config.Config, v float32) { c.Firework.Orb.Count = int(v) }},
	{"Morph radius", 20, 160, "%.0f",
		func(c *config.Config) float32 { return float32(c.Snow.MorphRadius) },
		func(c *config.Config, v float32) { c.Snow.MorphRadius = float64(v) }},
}

func main() {
	preset := flag.String("preset", config.DefaultPreset, "Starting preset")
	out := flag.String("out", "tuner.yaml", "File written by the S key")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*preset, "")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Wish Sky Tuner")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	w, h := float32(previewWidth), float32(windowHeight)

	fireworks := systems.NewFireworks(cfg, w, h, rng)
	fireworks.SetActive(true)
	snow := systems.NewSnowField(cfg, w, h, rng)
	fwRenderer := renderer.NewFireworkRenderer(previewWidth, windowHeight, float32(cfg.Firework.TrailFade))
	fwRenderer.Init()
	defer fwRenderer.Unload()
	snowRenderer := renderer.NewSnowRenderer(cfg)

	// rebuild applies slider edits; engines copy config at construction
	rebuild := func() {
		if err := cfg.Recompute(); err != nil {
			slog.Warn("invalid tuning", "error", err)
			return
		}
		fireworks = systems.NewFireworks(cfg, w, h, rng)
		fireworks.SetActive(true)
		snow = systems.NewSnowField(cfg, w, h, rng)
		snowRenderer = renderer.NewSnowRenderer(cfg)
		fwRenderer.SetFade(float32(cfg.Firework.TrailFade))
	}

	presets := config.Presets()
	status := ""

	for !rl.WindowShouldClose() {
		m := rl.GetMousePosition()
		if m.X < previewWidth {
			snow.SetPointer(m.X, m.Y)
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				fireworks.Spawn(m.X, m.Y)
			}
		}
		fireworks.Update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
		snow.Update()
		fwRenderer.Update(fireworks)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		fwRenderer.Draw()
		snowRenderer.Draw(snow, time.Now())
		rl.DrawText(fmt.Sprintf("Bursts: %d  Particles: %d  Morphed: %d", fireworks.Count(), fireworks.ParticleCount(), snow.MorphedCount()),
			10, 10, 16, rl.LightGray)

		// Control panel
		panelX := float32(previewWidth + 20)
		panelY := float32(10)
		rl.DrawRectangle(previewWidth, 0, windowWidth-previewWidth, windowHeight, rl.Color{R: 24, G: 24, B: 28, A: 255})
		rl.DrawText("Tuning ("+cfg.Derived.Preset+")", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 32

		changed := false
		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			cur := s.get(cfg)
			next := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				cur, s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, cur), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
			if next != cur {
				s.set(cfg, next)
				changed = true
			}
			panelY += 30
		}
		if changed {
			rebuild()
		}

		// Preset buttons
		bx := panelX
		for _, name := range presets {
			if gui.Button(rl.Rectangle{X: bx, Y: panelY, Width: 110, Height: 28}, name) {
				if loaded, err := config.Load(name, ""); err == nil {
					cfg = loaded
					rebuild()
				}
			}
			bx += 120
		}
		panelY += 40

		rl.DrawText("Click the preview to launch a burst", int32(panelX), int32(panelY), 12, rl.Gray)
		rl.DrawText("C: copy YAML   S: save "+*out, int32(panelX), int32(panelY+16), 12, rl.Gray)
		if status != "" {
			rl.DrawText(status, int32(panelX), int32(panelY+34), 12, rl.Yellow)
		}

		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(tuningYAML(cfg))
			status = "copied"
		}
		if rl.IsKeyPressed(rl.KeyS) {
			if err := cfg.WriteYAML(*out); err != nil {
				status = err.Error()
			} else {
				status = "saved " + *out
			}
		}

		rl.EndDrawing()
	}
}

// tuningYAML renders the slider values as a config overlay.
func tuningYAML(cfg *config.Config) string {
	var b strings.Builder
	fw := cfg.Firework
	fmt.Fprintf(&b, "snow:\n  morph_radius: %.0f\n", cfg.Snow.MorphRadius)
	fmt.Fprintf(&b, "firework:\n  trail_fade: %.2f\n  spawn_interval_ms: %d\n  history_length: %d\n",
		fw.TrailFade, fw.SpawnIntervalMS, fw.HistoryLength)
	fmt.Fprintf(&b, "  streak:\n    count: %d\n    speed_max: %.1f\n    gravity: %.3f\n    friction: %.3f\n",
		fw.Streak.Count, fw.Streak.SpeedMax, fw.Streak.Gravity, fw.Streak.Friction)
	fmt.Fprintf(&b, "  spark:\n    count: %d\n  orb:\n    count: %d\n", fw.Spark.Count, fw.Orb.Count)
	return b.String()
}
