package systems

import (
	"math"
	"time"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
)

// MarkerLayout places n settled markers evenly along the bottom band,
// centred horizontally. Spacing is width/(n+1), capped by MaxSpacing when set,
// so the row never overflows the viewport. Pure: same inputs, same output.
func MarkerLayout(n int, width, height float32, cfg config.MarkerConfig) []components.Point {
	if n <= 0 {
		return nil
	}

	spacing := width / float32(n+1)
	if cfg.MaxSpacing > 0 && spacing > float32(cfg.MaxSpacing) {
		spacing = float32(cfg.MaxSpacing)
	}

	centerX := width / 2
	first := centerX - spacing*float32(n-1)/2
	y := height - float32(cfg.BottomOffset)

	points := make([]components.Point, n)
	for i := range points {
		points[i] = components.Point{X: first + spacing*float32(i), Y: y}
	}
	return points
}

// MarkerPhase returns the decorative rotation of settled markers at wall-clock time t.
func MarkerPhase(t time.Time, cfg config.MarkerConfig) float32 {
	phase := math.Mod(float64(t.UnixMilli())*cfg.RotationRate, 2*math.Pi)
	return float32(phase)
}
