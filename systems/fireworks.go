package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
)

// Fireworks is the burst engine. Each burst is an ECS entity owning its
// particles; the engine advances them one frame per Step and removes bursts
// that reach their age ceiling.
type Fireworks struct {
	world *ecs.World

	burstMapper *ecs.Map3[components.BurstOrigin, components.BurstAge, components.BurstParticles]
	burstFilter *ecs.Filter3[components.BurstOrigin, components.BurstAge, components.BurstParticles]

	cfg    config.FireworkConfig
	colors []components.RGB // Palette followed by archetype overrides
	fixed  [3]int           // Per-kind override index into colors, -1 = palette
	rng    *rand.Rand

	width, height float32

	active     bool
	interval   time.Duration
	sinceSpawn time.Duration
	spawned    int

	toRemove []ecs.Entity
}

// NewFireworks creates an idle engine for a width x height viewport.
func NewFireworks(cfg *config.Config, width, height float32, rng *rand.Rand) *Fireworks {
	world := ecs.NewWorld()

	f := &Fireworks{
		world:       world,
		burstMapper: ecs.NewMap3[components.BurstOrigin, components.BurstAge, components.BurstParticles](world),
		burstFilter: ecs.NewFilter3[components.BurstOrigin, components.BurstAge, components.BurstParticles](world),
		cfg:         cfg.Firework,
		rng:         rng,
		width:       width,
		height:      height,
		interval:    cfg.Derived.SpawnInterval,
	}

	for _, c := range cfg.Derived.Palette {
		r, g, b := c.RGB255()
		f.colors = append(f.colors, components.RGB{R: r, G: g, B: b})
	}
	for kind, arch := range f.archetypes() {
		f.fixed[kind] = -1
		if arch.Color == "" {
			continue
		}
		// Validated by config.Load
		rgb, _ := ParseRGB(arch.Color)
		f.fixed[kind] = len(f.colors)
		f.colors = append(f.colors, rgb)
	}

	return f
}

// archetypes returns the tuning for each kind, indexed by ParticleKind.
func (f *Fireworks) archetypes() [3]config.ArchetypeConfig {
	return [3]config.ArchetypeConfig{
		components.KindStreak:  f.cfg.Streak,
		components.KindSpark:   f.cfg.Spark,
		components.KindGlowOrb: f.cfg.Orb,
	}
}

// SetActive toggles automatic spawning. Deactivating stops new bursts only;
// existing bursts keep animating until they expire.
func (f *Fireworks) SetActive(active bool) {
	if f.active == active {
		return
	}
	f.active = active
	f.sinceSpawn = 0
}

// Active reports whether automatic spawning is on.
func (f *Fireworks) Active() bool {
	return f.active
}

// Update advances the spawn clock by dt, spawning at most one burst, then
// steps every live burst by one frame.
func (f *Fireworks) Update(dt time.Duration) {
	if f.active && f.interval > 0 {
		f.sinceSpawn += dt
		if f.sinceSpawn >= f.interval {
			f.sinceSpawn %= f.interval
			f.SpawnRandom()
		}
	}
	f.Step()
}

// SpawnRandom launches a burst at a random point in the spawn band.
func (f *Fireworks) SpawnRandom() {
	x := randRange(f.rng, f.cfg.SpawnMinX, f.cfg.SpawnMaxX) * f.width
	y := randRange(f.rng, f.cfg.SpawnMinY, f.cfg.SpawnMaxY) * f.height
	f.Spawn(x, y)
}

// Spawn launches a burst centred on (x, y) with the configured archetype counts.
// A burst draws from at most two palette colours, its main and second colour.
func (f *Fireworks) Spawn(x, y float32) {
	main := uint8(f.rng.Intn(len(f.cfg.Palette)))
	second := uint8(f.rng.Intn(len(f.cfg.Palette)))

	total := f.cfg.Streak.Count + f.cfg.Spark.Count + f.cfg.Orb.Count
	particles := make([]components.BurstParticle, 0, total)
	for kind, arch := range f.archetypes() {
		for i := 0; i < arch.Count; i++ {
			particles = append(particles, f.newParticle(components.ParticleKind(kind), arch, x, y, main, second))
		}
	}

	origin := components.BurstOrigin{X: x, Y: y}
	age := components.BurstAge{MaxAge: int32(f.cfg.MaxAge)}
	parts := components.BurstParticles{Particles: particles, Colors: f.colors}
	f.burstMapper.NewEntity(&origin, &age, &parts)
	f.spawned++
}

func (f *Fireworks) newParticle(kind components.ParticleKind, arch config.ArchetypeConfig, x, y float32, main, second uint8) components.BurstParticle {
	p := components.BurstParticle{
		X:        x,
		Y:        y,
		Alpha:    float32(arch.Alpha),
		Gravity:  float32(arch.Gravity),
		Friction: float32(arch.Friction),
		Size:     randRange(f.rng, arch.SizeMin, arch.SizeMax),
		Decay:    randRange(f.rng, arch.DecayMin, arch.DecayMax),
		Kind:     kind,
	}

	if arch.Spread > 0 {
		p.X += randSigned(f.rng, arch.Spread/2)
		p.Y += randSigned(f.rng, arch.Spread/2)
	}

	if kind.Moves() {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := f.rng.Float64()*(arch.SpeedMax-arch.SpeedMin) + arch.SpeedMin
		p.VX = float32(math.Cos(angle) * speed)
		p.VY = float32(math.Sin(angle) * speed)
	}

	switch {
	case f.fixed[kind] >= 0:
		p.Color = uint8(f.fixed[kind])
	case f.rng.Float64() < arch.MainColorChance:
		p.Color = main
	default:
		p.Color = second
	}

	if kind == components.KindStreak {
		p.History = components.NewTrail(f.cfg.HistoryLength)
	}
	return p
}

// Step advances every burst by exactly one frame and removes expired ones.
func (f *Fireworks) Step() {
	f.toRemove = f.toRemove[:0]

	query := f.burstFilter.Query()
	for query.Next() {
		_, age, parts := query.Get()
		age.Age++

		for i := range parts.Particles {
			stepParticle(&parts.Particles[i])
		}

		if age.Expired() || (f.cfg.RemoveWhenFaded && parts.Faded()) {
			f.toRemove = append(f.toRemove, query.Entity())
		}
	}

	for _, e := range f.toRemove {
		f.world.RemoveEntity(e)
	}
}

// stepParticle records the trail point, then integrates one particle. Alpha is allowed to go negative;
// such particles are simply not drawn.
func stepParticle(p *components.BurstParticle) {
	if p.Kind.Moves() {
		p.History.Push(p.X, p.Y)
		p.VX *= p.Friction
		p.VY *= p.Friction
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
	}
	p.Alpha -= p.Decay
}

// Each calls fn for every live burst. fn must not retain the pointers.
func (f *Fireworks) Each(fn func(origin *components.BurstOrigin, age *components.BurstAge, parts *components.BurstParticles)) {
	query := f.burstFilter.Query()
	for query.Next() {
		fn(query.Get())
	}
}

// Count returns the number of live bursts.
func (f *Fireworks) Count() int {
	n := 0
	query := f.burstFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// ParticleCount returns the number of particles across live bursts.
func (f *Fireworks) ParticleCount() int {
	n := 0
	query := f.burstFilter.Query()
	for query.Next() {
		_, _, parts := query.Get()
		n += len(parts.Particles)
	}
	return n
}

// Spawned returns the total bursts launched since creation.
func (f *Fireworks) Spawned() int {
	return f.spawned
}

// Resize updates the spawn band. Live bursts are left where they are.
func (f *Fireworks) Resize(width, height float32) {
	f.width = width
	f.height = height
}

// Reset removes every burst and stops spawning.
func (f *Fireworks) Reset() {
	f.toRemove = f.toRemove[:0]
	query := f.burstFilter.Query()
	for query.Next() {
		f.toRemove = append(f.toRemove, query.Entity())
	}
	for _, e := range f.toRemove {
		f.world.RemoveEntity(e)
	}
	f.active = false
	f.sinceSpawn = 0
}
