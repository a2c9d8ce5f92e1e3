package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/systems"
)

// ErrBlankWish is returned when the name or the wish text is empty.
var ErrBlankWish = errors.New("name and wish are both required")

// PointerMoved forwards a pointer position to the snow field.
func (g *Game) PointerMoved(x, y float32) {
	g.snow.SetPointer(x, y)
}

// Click routes a primary click. Clicks only reach the field when no modal is open.
func (g *Game) Click(x, y float32) systems.Hit {
	if g.modal != ModalNone {
		return systems.Hit{Kind: systems.HitNone, Index: -1}
	}

	hit := g.snow.Click(x, y)
	switch hit.Kind {
	case systems.HitFalling:
		g.collector.RecordFallingHit()
	case systems.HitSettled:
		g.collector.RecordSettledHit()
	default:
		g.collector.RecordMiss()
	}
	return hit
}

func (g *Game) openWishForm() {
	g.form.Reset()
	g.modal = ModalWishForm
}

func (g *Game) openSavedWish(w components.Wish) {
	g.selected = w
	g.modal = ModalSavedWish
}

// CloseModal dismisses the open overlay.
func (g *Game) CloseModal() {
	switch g.modal {
	case ModalBlessing:
		g.blessingText = ""
	case ModalSavedWish:
		g.selected = components.Wish{}
	}
	g.modal = ModalNone
}

// SubmitWish validates and records a wish, settles it in the snow field,
// opens the firework window and requests a blessing in the background.
func (g *Game) SubmitWish(name, content string) (components.Wish, error) {
	name = strings.TrimSpace(name)
	content = strings.TrimSpace(content)
	if name == "" || content == "" {
		g.collector.RecordRejectedWish()
		return components.Wish{}, ErrBlankWish
	}

	g.nextWishID++
	w := components.Wish{
		ID:        fmt.Sprintf("w%d-%s", g.nextWishID, strconv.FormatInt(g.rng.Int63(), 36)),
		Name:      name,
		Content:   content,
		CreatedAt: g.now,
	}

	// Fresh slice so the field never observes a later append
	wishes := make([]components.Wish, len(g.wishes), len(g.wishes)+1)
	copy(wishes, g.wishes)
	g.wishes = append(wishes, w)
	g.snow.SetWishes(g.wishes)

	if g.modal == ModalWishForm {
		g.modal = ModalNone
	}
	g.hasInteracted = true
	g.brand.Start()

	g.openFireworkWindow()
	g.pending = append(g.pending, g.blesser.Request(g.ctx, name, content))

	g.collector.RecordWish()
	slog.Info("wish accepted", "id", w.ID, "wishes", len(g.wishes))
	return w, nil
}

// openFireworkWindow turns spawning on and arms an independent stop timer.
// Earlier timers are left in place, so spawning stops one window after the
// oldest pending submission.
func (g *Game) openFireworkWindow() {
	if !g.fireworks.Active() {
		g.collector.RecordFireworkWindow()
		slog.Info("fireworks", "active", true)
	}
	g.fireworks.SetActive(true)
	g.fireworkTimers = append(g.fireworkTimers, g.now.Add(g.cfg.Derived.FireworkWindow))
}

// expireFireworkWindow fires every stop timer whose deadline has passed.
func (g *Game) expireFireworkWindow() {
	fired := 0
	for fired < len(g.fireworkTimers) && !g.now.Before(g.fireworkTimers[fired]) {
		fired++
	}
	if fired == 0 {
		return
	}
	g.fireworkTimers = g.fireworkTimers[fired:]
	if g.fireworks.Active() {
		g.fireworks.SetActive(false)
		slog.Info("fireworks", "active", false, "live_bursts", g.fireworks.Count())
	}
}

// drainBlessings collects finished requests without blocking and shows the
// oldest queued blessing once no other modal is open.
func (g *Game) drainBlessings() {
	kept := g.pending[:0]
	for _, ch := range g.pending {
		select {
		case text := <-ch:
			g.blessingQueue = append(g.blessingQueue, text)
		default:
			kept = append(kept, ch)
		}
	}
	for i := len(kept); i < len(g.pending); i++ {
		g.pending[i] = nil
	}
	g.pending = kept

	if g.modal != ModalNone || len(g.blessingQueue) == 0 {
		return
	}
	g.blessingText = g.blessingQueue[0]
	g.blessingQueue = g.blessingQueue[1:]
	g.modal = ModalBlessing
	g.blessingReveal = newBlessingReveal(g.cfg.Screen.TargetFPS)
	g.blessingReveal.Start()
	g.collector.RecordBlessing()
}
