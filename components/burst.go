package components

// BurstOrigin is the explosion centre of a burst entity.
type BurstOrigin struct {
	X, Y float32
}

// BurstAge tracks how many frames a burst has been alive.
// A burst is removed once Age >= MaxAge, whatever its particles' alpha.
type BurstAge struct {
	Age    int32
	MaxAge int32
}

// Expired reports whether the burst has reached its age ceiling.
func (a BurstAge) Expired() bool {
	return a.Age >= a.MaxAge
}

// RGB is an opaque colour; alpha comes from the particle.
type RGB struct {
	R, G, B uint8
}

// BurstParticles holds the particles a burst owns exclusively,
// plus the burst's colour table (main colour first).
type BurstParticles struct {
	Particles []BurstParticle
	Colors    []RGB
}

// Faded reports whether every particle has reached zero alpha.
func (b *BurstParticles) Faded() bool {
	for i := range b.Particles {
		if b.Particles[i].Alpha > 0 {
			return false
		}
	}
	return true
}
