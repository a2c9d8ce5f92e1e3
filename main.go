package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/blessing"
	"github.com/pthm-cable/wishsky/config"
	"github.com/pthm-cable/wishsky/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	preset := flag.String("preset", "", "Tuning preset: "+strings.Join(config.Presets(), ", ")+" (empty = "+config.DefaultPreset+")")
	headless := flag.Bool("headless", false, "Run without graphics")
	demo := flag.Bool("demo", false, "Scripted wishes (headless only)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*preset, *configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	gen, err := blessing.GeneratorFromEnv(context.Background(), cfg)
	if err != nil {
		slog.Warn("blessing generator unavailable", "error", err)
		gen = nil
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		Demo:           *demo && *headless,
		Generator:      gen,
	}

	if *headless {
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless session",
			"seed", rngSeed,
			"preset", cfg.Derived.Preset,
			"max_frames", *maxFrames,
			"demo", opts.Demo,
		)

		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && g.Frame() >= int64(*maxFrames) {
				slog.Info("max frames reached", "frame", g.Frame(), "wishes", len(g.Wishes()))
				return
			}
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape closes modals instead of the window
	rl.SetExitKey(rl.KeyNull)

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && g.Frame() >= int64(*maxFrames) {
			break
		}
	}
}
