package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/wishsky/blessing"
	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
	"github.com/pthm-cable/wishsky/renderer"
	"github.com/pthm-cable/wishsky/systems"
	"github.com/pthm-cable/wishsky/telemetry"
	"github.com/pthm-cable/wishsky/ui"
)

// Modal identifies which overlay currently owns input.
type Modal int

const (
	ModalNone Modal = iota
	ModalWishForm
	ModalSavedWish
	ModalBlessing
)

// String returns the modal name.
func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalWishForm:
		return "wish_form"
	case ModalSavedWish:
		return "saved_wish"
	case ModalBlessing:
		return "blessing"
	}
	return "unknown"
}

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	Demo           bool               // Scripted wishes in headless runs
	Start          time.Time          // Virtual clock origin (zero = now)
	Generator      blessing.Generator // nil = fallback blessings only
}

// Game coordinates the snow field, fireworks, modals and blessing requests.
type Game struct {
	cfg      *config.Config
	rng      *rand.Rand
	headless bool

	// Engines
	snow      *systems.SnowField
	fireworks *systems.Fireworks
	blesser   *blessing.Service

	// Session state
	wishes           []components.Wish
	nextWishID       uint64
	modal            Modal
	selected         components.Wish
	blessingText     string
	blessingQueue    []string
	pending          []<-chan string
	hasInteracted    bool
	fireworkTimers   []time.Time // One pending stop deadline per submission, oldest first

	ctx    context.Context
	cancel context.CancelFunc

	// Rendering (nil when headless)
	sky              *renderer.SkyRenderer
	snowRenderer     *renderer.SnowRenderer
	fireworkRenderer *renderer.FireworkRenderer
	uiRenderer       *ui.Renderer
	hud              *ui.HUD
	debugPanel       *ui.DebugPanel
	form             ui.WishForm
	brand            *ui.Reveal
	blessingReveal   *ui.Reveal
	debugMode        bool

	// Demo
	demo *demoScript

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Time
	frame   int64
	now     time.Time
	started time.Time
	dt      time.Duration

	width, height float32
}

// NewGameWithOptions creates a game using the global configuration.
// Rendering resources are created only when not headless, and must be
// created after the raylib window.
func NewGameWithOptions(opts Options) (*Game, error) {
	return newGame(config.Cfg(), opts)
}

func newGame(cfg *config.Config, opts Options) (*Game, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	w, h := cfg.Derived.ScreenW32, cfg.Derived.ScreenH32

	blesser, err := blessing.NewService(cfg, opts.Generator)
	if err != nil {
		return nil, err
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		cfg:           cfg,
		rng:           rng,
		headless:      opts.Headless,
		snow:          systems.NewSnowField(cfg, w, h, rng),
		fireworks:     systems.NewFireworks(cfg, w, h, rng),
		blesser:       blesser,
		ctx:           ctx,
		cancel:        cancel,
		brand:         ui.NewReveal(fps, cfg.Coordinator.RevealSec),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:     telemetry.NewCollector(statsWindow, 1/float64(fps)),
		outputManager: outputManager,
		logStats:      opts.LogStats,
		now:           start,
		started:       start,
		dt:            time.Second / time.Duration(fps),
		width:         w,
		height:        h,
	}

	g.snow.SetCallbacks(systems.FieldCallbacks{
		OnFallingHit: g.openWishForm,
		OnSettledHit: g.openSavedWish,
	})

	if opts.Demo {
		g.demo = newDemoScript()
	}

	if !opts.Headless {
		g.initRendering()
	}

	slog.Info("game ready",
		"preset", cfg.Derived.Preset,
		"flakes", len(g.snow.Particles),
		"headless", opts.Headless,
		"demo", opts.Demo,
	)
	return g, nil
}

// initRendering creates renderers (must be called after raylib window is created).
func (g *Game) initRendering() {
	cfg := g.cfg
	g.sky = renderer.NewSkyRenderer(
		components.RGB{R: 2, G: 2, B: 6},
		components.RGB{R: 14, G: 6, B: 12},
	)
	g.snowRenderer = renderer.NewSnowRenderer(cfg)
	g.fireworkRenderer = renderer.NewFireworkRenderer(int32(g.width), int32(g.height), float32(cfg.Firework.TrailFade))
	g.fireworkRenderer.Init()
	g.uiRenderer = ui.NewRenderer()
	g.hud = ui.NewHUD(g.uiRenderer)
	g.debugPanel = ui.NewDebugPanel(g.uiRenderer, 16, 16)
}

// Unload cancels in-flight blessings, stops fireworks and frees resources.
func (g *Game) Unload() {
	g.cancel()
	g.fireworks.Reset()
	if g.fireworkRenderer != nil {
		g.fireworkRenderer.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Frame returns the number of frames advanced.
func (g *Game) Frame() int64 {
	return g.frame
}

// Now returns the virtual clock.
func (g *Game) Now() time.Time {
	return g.now
}

// Modal returns the open overlay.
func (g *Game) Modal() Modal {
	return g.modal
}

// Wishes returns the accepted wishes in submission order.
func (g *Game) Wishes() []components.Wish {
	return g.wishes
}

// SelectedWish returns the wish shown by the saved-wish view.
func (g *Game) SelectedWish() components.Wish {
	return g.selected
}

// BlessingText returns the blessing on screen, or "".
func (g *Game) BlessingText() string {
	return g.blessingText
}

// HasInteracted reports whether a wish has been submitted this session.
func (g *Game) HasInteracted() bool {
	return g.hasInteracted
}

// FireworksActive reports whether bursts are being launched.
func (g *Game) FireworksActive() bool {
	return g.fireworks.Active()
}

// Snow exposes the snow field.
func (g *Game) Snow() *systems.SnowField {
	return g.snow
}

// Fireworks exposes the firework engine.
func (g *Game) Fireworks() *systems.Fireworks {
	return g.fireworks
}
