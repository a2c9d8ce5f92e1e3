package systems

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/wishsky/components"
)

// ParseRGB converts a "#rrggbb" string into an opaque colour.
func ParseRGB(hex string) (components.RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return components.RGB{}, fmt.Errorf("parsing colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return components.RGB{R: r, G: g, B: b}, nil
}
