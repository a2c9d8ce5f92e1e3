package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/wishsky/systems"
)

// demoWish is one scripted submission.
type demoWish struct {
	name, content string
}

var demoWishes = []demoWish{
	{"Ada", "A quiet garden and time to tend it"},
	{"Bo", "Health for my parents"},
	{"Chen", "To finish the book I started"},
	{"Dara", "More mornings by the sea"},
	{"Eli", "Courage to change cities"},
}

const (
	demoInterval  = 15 * time.Second
	demoAcceptAge = 3 * time.Second
)

// demoScript drives a headless session like a visitor would: click a
// falling flake, submit a wish, accept the blessing, repeat.
type demoScript struct {
	next        int
	lastWish    time.Time
	blessingAge time.Duration
}

func newDemoScript() *demoScript {
	return &demoScript{}
}

func (d *demoScript) step(g *Game) {
	switch g.Modal() {
	case ModalBlessing:
		d.blessingAge += g.dt
		if d.blessingAge >= demoAcceptAge {
			slog.Info("demo accepted blessing", "chars", len(g.BlessingText()))
			g.CloseModal()
			d.blessingAge = 0
		}
		return

	case ModalWishForm:
		w := demoWishes[d.next%len(demoWishes)]
		d.next++
		if _, err := g.SubmitWish(w.name, w.content); err != nil {
			slog.Error("demo wish rejected", "error", err)
			g.CloseModal()
		}
		d.lastWish = g.Now()
		return

	case ModalSavedWish:
		g.CloseModal()
		return

	case ModalNone:
		if !d.lastWish.IsZero() && g.Now().Sub(d.lastWish) < demoInterval {
			return
		}
		// Aim at the first flake fully on screen
		for i := range g.snow.Particles {
			p := &g.snow.Particles[i]
			if p.Y > 0 {
				if hit := g.Click(p.X, p.Y); hit.Kind == systems.HitFalling {
					return
				}
			}
		}
	}
}
