package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
	"github.com/pthm-cable/wishsky/systems"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(context.Context, string) (string, error) {
	return s.text, s.err
}

var epoch = time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

func newTestGame(t *testing.T, gen stubGenerator) *Game {
	t.Helper()
	cfg, err := config.Load("", "")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	g, err := newGame(cfg, Options{Seed: 3, Headless: true, Start: epoch, Generator: gen})
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

// runFor advances whole frames until d of virtual time has elapsed.
func runFor(g *Game, d time.Duration) {
	end := g.Now().Add(d)
	for g.Now().Before(end) {
		g.UpdateHeadless()
	}
}

// waitForModal steps frames until the modal opens or a wall-clock second passes.
func waitForModal(t *testing.T, g *Game, want Modal) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for g.Modal() != want {
		if time.Now().After(deadline) {
			t.Fatalf("modal = %v, want %v", g.Modal(), want)
		}
		g.UpdateHeadless()
		time.Sleep(time.Millisecond)
	}
}

// clearField parks every flake far off-screen so clicks only see markers.
func clearField(g *Game) {
	for i := range g.snow.Particles {
		g.snow.Particles[i].X = -5000
		g.snow.Particles[i].Y = -5000
		g.snow.Particles[i].Speed = 0
		g.snow.Particles[i].Wind = 0
	}
}

func TestSubmitWishRejectsBlank(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})

	tests := []struct{ name, content string }{
		{"", "peace"},
		{"Ada", "   "},
		{" \t", "\n"},
	}
	for _, tt := range tests {
		if _, err := g.SubmitWish(tt.name, tt.content); !errors.Is(err, ErrBlankWish) {
			t.Errorf("SubmitWish(%q, %q) err = %v, want ErrBlankWish", tt.name, tt.content, err)
		}
	}
	if len(g.Wishes()) != 0 || g.FireworksActive() || g.HasInteracted() {
		t.Error("blank submissions changed session state")
	}
}

func TestSubmitWishTrimsAndSettles(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})

	w, err := g.SubmitWish("  Ada ", " a quiet garden\n")
	if err != nil {
		t.Fatal(err)
	}
	if w.Name != "Ada" || w.Content != "a quiet garden" {
		t.Errorf("wish = %+v, want trimmed fields", w)
	}
	if !w.CreatedAt.Equal(epoch) {
		t.Errorf("CreatedAt = %v, want %v", w.CreatedAt, epoch)
	}

	w2, err := g.SubmitWish("Bo", "health")
	if err != nil {
		t.Fatal(err)
	}
	if w.ID == w2.ID || w.ID == "" {
		t.Errorf("ids not unique: %q %q", w.ID, w2.ID)
	}
	if got := g.Snow().Wishes(); len(got) != 2 || got[1].ID != w2.ID {
		t.Errorf("field wishes = %+v", got)
	}
	if !g.HasInteracted() {
		t.Error("hasInteracted not set")
	}
}

func TestFireworkWindow(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})

	if _, err := g.SubmitWish("Ada", "peace"); err != nil {
		t.Fatal(err)
	}
	if !g.FireworksActive() {
		t.Fatal("fireworks not active after submission")
	}

	runFor(g, 11*time.Second)
	if !g.FireworksActive() {
		t.Fatal("fireworks stopped before the window closed")
	}
	spawned := g.Fireworks().Spawned()
	if spawned < 10 {
		t.Errorf("spawned %d bursts in 11s, want at least 10", spawned)
	}

	runFor(g, 2*time.Second)
	if g.FireworksActive() {
		t.Fatal("fireworks still active after 13s")
	}

	// Live bursts keep animating; no new ones launch
	live := g.Fireworks().Count()
	if live == 0 {
		t.Error("deactivation removed live bursts")
	}
	spawned = g.Fireworks().Spawned()
	runFor(g, 5*time.Second)
	if g.Fireworks().Spawned() != spawned {
		t.Error("bursts spawned after the window closed")
	}
	if g.Fireworks().Count() != 0 {
		t.Errorf("%d bursts outlived max age", g.Fireworks().Count())
	}
}

func TestLaterWishKeepsFirstStopTimer(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})

	if _, err := g.SubmitWish("Ada", "peace"); err != nil {
		t.Fatal(err)
	}
	runFor(g, 8*time.Second)
	if _, err := g.SubmitWish("Bo", "health"); err != nil {
		t.Fatal(err)
	}
	runFor(g, 3*time.Second)
	if !g.FireworksActive() {
		t.Fatal("fireworks stopped before the first window closed")
	}
	runFor(g, 2*time.Second)
	if g.FireworksActive() {
		t.Fatal("second wish extended the first window")
	}
}

func TestStaleStopTimerCutsReopenedWindow(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})

	// Timers at 12s and 22s
	if _, err := g.SubmitWish("Ada", "peace"); err != nil {
		t.Fatal(err)
	}
	runFor(g, 10*time.Second)
	if _, err := g.SubmitWish("Bo", "health"); err != nil {
		t.Fatal(err)
	}
	runFor(g, 3*time.Second)
	if g.FireworksActive() {
		t.Fatal("fireworks still active after the first timer")
	}

	// Reopened at 13s; the 22s timer still fires
	if _, err := g.SubmitWish("Cy", "joy"); err != nil {
		t.Fatal(err)
	}
	runFor(g, 8*time.Second)
	if !g.FireworksActive() {
		t.Fatal("fireworks stopped before the pending 22s timer")
	}
	runFor(g, 2*time.Second)
	if g.FireworksActive() {
		t.Fatal("pending 22s timer did not stop the reopened window")
	}
	runFor(g, 12*time.Second)
	if g.FireworksActive() {
		t.Fatal("fireworks restarted without a submission")
	}
}

func TestClickRouting(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})
	clearField(g)

	// Miss on an empty sky
	if hit := g.Click(640, 660); hit.Kind != systems.HitNone || g.Modal() != ModalNone {
		t.Fatalf("hit = %+v modal = %v, want miss", hit, g.Modal())
	}

	// Falling flake opens the form
	g.snow.Particles[0].X, g.snow.Particles[0].Y = 300, 200
	if hit := g.Click(310, 210); hit.Kind != systems.HitFalling {
		t.Fatalf("hit = %+v, want falling", hit)
	}
	if g.Modal() != ModalWishForm {
		t.Fatalf("modal = %v, want wish form", g.Modal())
	}

	// Clicks are swallowed while a modal is open
	if hit := g.Click(300, 200); hit.Kind != systems.HitNone {
		t.Errorf("click reached the field under a modal: %+v", hit)
	}

	w, err := g.SubmitWish("Ada", "peace")
	if err != nil {
		t.Fatal(err)
	}
	if g.Modal() != ModalNone {
		t.Fatalf("form still open after submit: %v", g.Modal())
	}

	// Settled marker opens the saved-wish view
	g.snow.Particles[0].X, g.snow.Particles[0].Y = -5000, -5000
	m := g.snow.Markers()[0]
	if hit := g.Click(m.X, m.Y); hit.Kind != systems.HitSettled {
		t.Fatalf("hit = %+v, want settled", hit)
	}
	if g.Modal() != ModalSavedWish || g.SelectedWish().ID != w.ID {
		t.Errorf("modal = %v selected = %+v", g.Modal(), g.SelectedWish())
	}

	g.CloseModal()
	if g.Modal() != ModalNone || g.SelectedWish().ID != "" {
		t.Error("CloseModal did not clear the saved-wish view")
	}
}

func TestBlessingFlow(t *testing.T) {
	tests := []struct {
		name string
		gen  stubGenerator
		want func(cfg *config.Config) string
	}{
		{"generated", stubGenerator{text: "May 2026 shine."}, func(*config.Config) string { return "May 2026 shine." }},
		{"service error", stubGenerator{err: errors.New("unavailable")}, func(c *config.Config) string { return c.Blessing.Fallbacks[1] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.gen)
			if _, err := g.SubmitWish("Ada", "peace"); err != nil {
				t.Fatal(err)
			}

			waitForModal(t, g, ModalBlessing)
			if got, want := g.BlessingText(), tt.want(g.cfg); got != want {
				t.Errorf("blessing = %q, want %q", got, want)
			}

			g.CloseModal()
			if g.BlessingText() != "" || g.Modal() != ModalNone {
				t.Error("accepting did not clear the blessing")
			}
		})
	}
}

func TestBlessingWaitsForOpenModal(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "later"})
	clearField(g)

	if _, err := g.SubmitWish("Ada", "peace"); err != nil {
		t.Fatal(err)
	}
	g.openSavedWish(components.Wish{ID: "x"})

	// Let the request finish while the saved-wish view is up
	deadline := time.Now().Add(time.Second)
	for len(g.blessingQueue) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("blessing never arrived")
		}
		g.UpdateHeadless()
		time.Sleep(time.Millisecond)
	}
	if g.Modal() != ModalSavedWish {
		t.Fatalf("blessing replaced the open modal: %v", g.Modal())
	}

	g.CloseModal()
	g.UpdateHeadless()
	if g.Modal() != ModalBlessing || g.BlessingText() != "later" {
		t.Errorf("modal = %v text = %q after closing", g.Modal(), g.BlessingText())
	}
}

func TestResizeKeepsPoolSize(t *testing.T) {
	g := newTestGame(t, stubGenerator{text: "ok"})
	n := len(g.Snow().Particles)

	g.Resize(640, 480)
	runFor(g, time.Second)
	if len(g.Snow().Particles) != n {
		t.Errorf("pool = %d after resize, want %d", len(g.Snow().Particles), n)
	}
	if w, h := g.Snow().Size(); w != 640 || h != 480 {
		t.Errorf("field size = %vx%v", w, h)
	}
}

func TestDemoScriptSubmitsWishes(t *testing.T) {
	cfg, err := config.Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	g, err := newGame(cfg, Options{Seed: 9, Headless: true, Demo: true, Start: epoch, Generator: stubGenerator{text: "ok"}})
	if err != nil {
		t.Fatal(err)
	}
	defer g.Unload()

	for i := 0; i < 60*40; i++ {
		g.UpdateHeadless()
		if i%60 == 0 {
			// Give the blessing goroutines a chance to deliver
			time.Sleep(time.Millisecond)
		}
	}
	if len(g.Wishes()) < 2 {
		t.Errorf("demo submitted %d wishes in 40s, want at least 2", len(g.Wishes()))
	}
}

func TestModalString(t *testing.T) {
	for m, want := range map[Modal]string{
		ModalNone:      "none",
		ModalWishForm:  "wish_form",
		ModalSavedWish: "saved_wish",
		ModalBlessing:  "blessing",
		Modal(42):      "unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("Modal(%d).String() = %q, want %q", m, got, want)
		}
	}
}
