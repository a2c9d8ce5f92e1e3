package systems

import (
	"math"

	"github.com/pthm-cable/wishsky/components"
)

// Segment is a line segment in screen space.
type Segment struct {
	A, B components.Point
}

const (
	ornamentArms      = 6
	ornamentArmScale  = 4   // Arm length = r * this
	ornamentTwigScale = 2   // Branch length = r * this
	ornamentTwigAngle = 0.5 // Branch angle off the arm (radians)
)

// OrnamentSegments returns the six-armed crystal drawn for morphed flakes and
// settled markers: each arm carries two branches from its midpoint.
// The result is appended to dst, which may be nil.
func OrnamentSegments(dst []Segment, cx, cy, r, angle float32) []Segment {
	centre := components.Point{X: cx, Y: cy}
	arm := float64(r * ornamentArmScale)
	twig := float64(r * ornamentTwigScale)

	for i := 0; i < ornamentArms; i++ {
		theta := float64(angle) + float64(i)*math.Pi/3
		tip := components.Point{
			X: cx + float32(math.Cos(theta)*arm),
			Y: cy + float32(math.Sin(theta)*arm),
		}
		dst = append(dst, Segment{A: centre, B: tip})

		mid := components.Point{X: (cx + tip.X) / 2, Y: (cy + tip.Y) / 2}
		for _, off := range [2]float64{ornamentTwigAngle, -ornamentTwigAngle} {
			dst = append(dst, Segment{A: mid, B: components.Point{
				X: mid.X + float32(math.Cos(theta+off)*twig),
				Y: mid.Y + float32(math.Sin(theta+off)*twig),
			}})
		}
	}
	return dst
}
