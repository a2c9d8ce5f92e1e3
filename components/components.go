// Package components defines the plain data the wish sky simulates.
//
// Field particles live in a fixed pool owned by the snow field. Bursts are ECS
// entities that exclusively own their particles.
package components

import "time"

// Wish is one accepted submission. Immutable once created.
type Wish struct {
	ID        string
	Name      string
	Content   string
	CreatedAt time.Time
}

// FieldParticle is one ambient snowflake slot.
type FieldParticle struct {
	X, Y    float32
	Speed   float32 // Downward pixels per frame
	Wind    float32 // Horizontal pixels per frame
	Opacity float32
	Angle   float32 // radians
	Spin    float32 // radians per frame
	Radius  float32

	// Morphed is recomputed every frame from pointer proximity.
	Morphed bool
}

// ParticleKind identifies a burst particle archetype.
type ParticleKind uint8

const (
	KindStreak ParticleKind = iota
	KindSpark
	KindGlowOrb
)

// String returns the archetype name.
func (k ParticleKind) String() string {
	switch k {
	case KindStreak:
		return "streak"
	case KindSpark:
		return "spark"
	case KindGlowOrb:
		return "glow-orb"
	}
	return "unknown"
}

// Moves reports whether particles of this kind integrate motion.
func (k ParticleKind) Moves() bool {
	return k != KindGlowOrb
}

// BurstParticle is one firework particle.
type BurstParticle struct {
	X, Y     float32
	VX, VY   float32
	Alpha    float32
	Gravity  float32
	Friction float32
	Size     float32
	Decay    float32
	Color    uint8 // Index into the burst colour table
	Kind     ParticleKind
	History  Trail
}

// Visible reports whether the particle should still be drawn.
func (p *BurstParticle) Visible() bool {
	return p.Alpha > 0
}
