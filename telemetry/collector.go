package telemetry

// Collector accumulates session events within frame windows and produces WindowStats.
type Collector struct {
	windowFrames int64
	dt           float64

	windowStartFrame int64
	lastSpawned      int

	wishesAdded     int
	wishesRejected  int
	fallingHits     int
	settledHits     int
	misses          int
	blessingsShown  int
	fireworkWindows int
	morphed         []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per frame
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	frames := int64(windowDurationSec / dt)
	if frames < 1 {
		frames = 1
	}
	return &Collector{
		windowFrames: frames,
		dt:           dt,
	}
}

// RecordWish records an accepted submission.
func (c *Collector) RecordWish() { c.wishesAdded++ }

// RecordRejectedWish records a blank submission.
func (c *Collector) RecordRejectedWish() { c.wishesRejected++ }

// RecordFallingHit records a click on a falling flake.
func (c *Collector) RecordFallingHit() { c.fallingHits++ }

// RecordSettledHit records a click on a settled marker.
func (c *Collector) RecordSettledHit() { c.settledHits++ }

// RecordMiss records a click that hit nothing.
func (c *Collector) RecordMiss() { c.misses++ }

// RecordBlessing records a blessing reaching the screen.
func (c *Collector) RecordBlessing() { c.blessingsShown++ }

// RecordFireworkWindow records a firework window opening.
func (c *Collector) RecordFireworkWindow() { c.fireworkWindows++ }

// RecordMorphed samples how many flakes are morphed this frame.
func (c *Collector) RecordMorphed(n int) {
	c.morphed = append(c.morphed, float64(n))
}

// ShouldFlush reports whether the window ending at frame is complete.
func (c *Collector) ShouldFlush(frame int64) bool {
	return frame-c.windowStartFrame >= c.windowFrames
}

// Snapshot holds engine state sampled at window end.
type Snapshot struct {
	Wishes          int
	Bursts          int
	Particles       int
	BurstsSpawned   int // Running total
	FireworksActive bool
}

// Flush produces the window stats and resets counters.
func (c *Collector) Flush(frame int64, snap Snapshot) WindowStats {
	d := ComputeDistribution(c.morphed)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		ElapsedSec:       float64(frame) * c.dt,
		Wishes:           snap.Wishes,
		Bursts:           snap.Bursts,
		Particles:        snap.Particles,
		FireworksActive:  snap.FireworksActive,
		WishesAdded:      c.wishesAdded,
		WishesRejected:   c.wishesRejected,
		FallingHits:      c.fallingHits,
		SettledHits:      c.settledHits,
		Misses:           c.misses,
		BurstsSpawned:    snap.BurstsSpawned - c.lastSpawned,
		BlessingsShown:   c.blessingsShown,
		FireworkWindows:  c.fireworkWindows,
		MorphedMean:      d.Mean,
		MorphedP95:       d.P95,
	}

	c.windowStartFrame = frame
	c.lastSpawned = snap.BurstsSpawned
	c.wishesAdded = 0
	c.wishesRejected = 0
	c.fallingHits = 0
	c.settledHits = 0
	c.misses = 0
	c.blessingsShown = 0
	c.fireworkWindows = 0
	c.morphed = c.morphed[:0]

	return stats
}
