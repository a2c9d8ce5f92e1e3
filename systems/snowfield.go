package systems

import (
	"math/rand"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
)

// OffscreenPointer is the pointer coordinate used before the first pointer move,
// far enough away that nothing morphs.
const OffscreenPointer = -2000

// HitKind classifies the result of a click hit test.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitFalling
	HitSettled
)

// Hit is the outcome of a click hit test.
type Hit struct {
	Kind  HitKind
	Index int // Pool index for HitFalling, wish index for HitSettled
	Wish  components.Wish
}

// FieldCallbacks are invoked by Click. Either may be nil.
type FieldCallbacks struct {
	OnFallingHit func()
	OnSettledHit func(components.Wish)
}

// SnowField is the ambient falling particle field with its row of settled wish markers.
// It is not safe for concurrent use; the frame loop owns it.
type SnowField struct {
	// Particles is the fixed-size pool. Slots are recycled in place, never appended or removed.
	Particles []components.FieldParticle

	snow    config.SnowConfig
	markers config.MarkerConfig

	width, height      float32
	pointerX, pointerY float32

	wishes    []components.Wish
	callbacks FieldCallbacks
	rng       *rand.Rand
	morphed   int
}

// NewSnowField creates a field covering a width x height viewport and seeds the pool.
func NewSnowField(cfg *config.Config, width, height float32, rng *rand.Rand) *SnowField {
	f := &SnowField{
		snow:     cfg.Snow,
		markers:  cfg.Markers,
		width:    width,
		height:   height,
		pointerX: OffscreenPointer,
		pointerY: OffscreenPointer,
		rng:      rng,
	}
	f.reseed()
	return f
}

// reseed regenerates the whole pool, spreading flakes across the viewport.
func (f *SnowField) reseed() {
	f.Particles = make([]components.FieldParticle, f.snow.Count)
	for i := range f.Particles {
		f.spawn(&f.Particles[i], true)
	}
	f.morphed = 0
}

// spawn assigns fresh random attributes to a slot. Initial flakes are placed
// anywhere on screen; recycled ones enter from above.
func (f *SnowField) spawn(p *components.FieldParticle, initial bool) {
	cfg := f.snow
	p.X = randRange(f.rng, 0, float64(f.width))
	if initial {
		p.Y = randRange(f.rng, 0, float64(f.height))
	} else {
		p.Y = -randRange(f.rng, 0, cfg.SpawnHeight)
	}
	p.Radius = randRange(f.rng, cfg.RadiusMin, cfg.RadiusMax)
	p.Speed = randRange(f.rng, cfg.SpeedMin, cfg.SpeedMax)
	p.Wind = randSigned(f.rng, cfg.Wind)
	p.Opacity = randRange(f.rng, cfg.OpacityMin, cfg.OpacityMax)
	p.Angle = randAngle(f.rng)
	p.Spin = randSigned(f.rng, cfg.Spin)
	p.Morphed = false
}

// Update advances every flake by one frame, recomputes the morph state against
// the pointer, then recycles flakes that fell past the bottom margin.
func (f *SnowField) Update() {
	limit := f.height + float32(f.snow.RecycleMargin)
	morphRadius := float32(f.snow.MorphRadius)

	f.morphed = 0
	for i := range f.Particles {
		p := &f.Particles[i]

		p.Y += p.Speed
		p.X += p.Wind
		p.Angle += p.Spin

		p.Morphed = within(p.X, p.Y, f.pointerX, f.pointerY, morphRadius)
		if p.Morphed {
			f.morphed++
		}

		if p.Y > limit {
			f.spawn(p, false)
		}
	}
}

// SetPointer stores the latest pointer position. No smoothing.
func (f *SnowField) SetPointer(x, y float32) {
	f.pointerX = x
	f.pointerY = y
}

// SetWishes replaces the settled wish list. The field only reads it.
func (f *SnowField) SetWishes(wishes []components.Wish) {
	f.wishes = wishes
}

// Wishes returns the settled wish list in display order.
func (f *SnowField) Wishes() []components.Wish {
	return f.wishes
}

// SetCallbacks installs the click callbacks.
func (f *SnowField) SetCallbacks(cb FieldCallbacks) {
	f.callbacks = cb
}

// Resize resets the viewport and regenerates the pool from scratch.
func (f *SnowField) Resize(width, height float32) {
	f.width = width
	f.height = height
	f.reseed()
}

// Size returns the viewport dimensions.
func (f *SnowField) Size() (width, height float32) {
	return f.width, f.height
}

// MorphedCount returns how many flakes were morphed in the last Update.
func (f *SnowField) MorphedCount() int {
	return f.morphed
}

// Markers returns the settled marker positions for the current wish list.
func (f *SnowField) Markers() []components.Point {
	return MarkerLayout(len(f.wishes), f.width, f.height, f.markers)
}

// HitTest resolves a click without side effects. Falling flakes are checked
// first in pool order; settled markers second in display order.
func (f *SnowField) HitTest(x, y float32) Hit {
	fallingRadius := float32(f.snow.FallingHitRadius)
	for i := range f.Particles {
		p := &f.Particles[i]
		if within(p.X, p.Y, x, y, fallingRadius) {
			return Hit{Kind: HitFalling, Index: i}
		}
	}

	settledRadius := float32(f.markers.HitRadius)
	for i, m := range f.Markers() {
		if within(m.X, m.Y, x, y, settledRadius) {
			return Hit{Kind: HitSettled, Index: i, Wish: f.wishes[i]}
		}
	}

	return Hit{Kind: HitNone, Index: -1}
}

// Click hit-tests the position and fires at most one callback.
func (f *SnowField) Click(x, y float32) Hit {
	hit := f.HitTest(x, y)
	switch hit.Kind {
	case HitFalling:
		if f.callbacks.OnFallingHit != nil {
			f.callbacks.OnFallingHit()
		}
	case HitSettled:
		if f.callbacks.OnSettledHit != nil {
			f.callbacks.OnSettledHit(hit.Wish)
		}
	}
	return hit
}
