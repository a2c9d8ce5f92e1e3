package systems

import (
	"math"
	"math/rand"
)

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// within reports whether (x1,y1) is strictly closer than radius to (x2,y2).
func within(x1, y1, x2, y2, radius float32) bool {
	return distanceSq(x1, y1, x2, y2) < radius*radius
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float32 {
	return float32(lo + rng.Float64()*(hi-lo))
}

// randSigned returns a uniform value in [-mag, mag).
func randSigned(rng *rand.Rand, mag float64) float32 {
	return float32((rng.Float64()*2 - 1) * mag)
}

// randAngle returns a uniform direction in [0, 2*Pi).
func randAngle(rng *rand.Rand) float32 {
	return float32(rng.Float64() * 2 * math.Pi)
}
