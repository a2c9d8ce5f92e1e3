package telemetry

import "log/slog"

// WindowStats holds session activity for one stats window.
// Wish names and contents are never recorded.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	ElapsedSec       float64 `csv:"elapsed_sec"`

	// State at window end
	Wishes          int  `csv:"wishes"`
	Bursts          int  `csv:"bursts"`
	Particles       int  `csv:"particles"`
	FireworksActive bool `csv:"fireworks_active"`

	// Events during window
	WishesAdded     int `csv:"wishes_added"`
	WishesRejected  int `csv:"wishes_rejected"`
	FallingHits     int `csv:"falling_hits"`
	SettledHits     int `csv:"settled_hits"`
	Misses          int `csv:"misses"`
	BurstsSpawned   int `csv:"bursts_spawned"`
	BlessingsShown  int `csv:"blessings_shown"`
	FireworkWindows int `csv:"firework_windows"`

	// Pointer engagement (morphed flakes per frame)
	MorphedMean float64 `csv:"morphed_mean"`
	MorphedP95  float64 `csv:"morphed_p95"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", s.WindowEndFrame),
		slog.Int("wishes", s.Wishes),
		slog.Int("wishes_added", s.WishesAdded),
		slog.Int("falling_hits", s.FallingHits),
		slog.Int("settled_hits", s.SettledHits),
		slog.Int("bursts", s.Bursts),
		slog.Int("bursts_spawned", s.BurstsSpawned),
		slog.Int("particles", s.Particles),
		slog.Bool("fireworks_active", s.FireworksActive),
		slog.Float64("morphed_mean", s.MorphedMean),
	)
}
