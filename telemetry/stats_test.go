package telemetry

import (
	"math"
	"testing"
)

func TestComputeDistribution(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{5}, Distribution{Mean: 5, Min: 5, Max: 5, P50: 5, P95: 5}},
		{
			"ten",
			[]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			Distribution{Mean: 5.5, Std: 3.02765, Min: 1, Max: 10, P50: 5, P95: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistribution(tt.values)
			fields := []struct {
				name      string
				got, want float64
			}{
				{"mean", got.Mean, tt.want.Mean},
				{"std", got.Std, tt.want.Std},
				{"min", got.Min, tt.want.Min},
				{"max", got.Max, tt.want.Max},
				{"p50", got.P50, tt.want.P50},
				{"p95", got.P95, tt.want.P95},
			}
			for _, f := range fields {
				if math.Abs(f.got-f.want) > 1e-3 {
					t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
				}
			}
		})
	}
}

func TestComputeDistributionLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeDistribution(values)
	if values[0] != 3 || values[1] != 1 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1, 0.1) // 10 frames per window

	c.RecordWish()
	c.RecordRejectedWish()
	c.RecordFallingHit()
	c.RecordSettledHit()
	c.RecordSettledHit()
	c.RecordMiss()
	c.RecordFireworkWindow()
	c.RecordMorphed(2)
	c.RecordMorphed(4)

	if c.ShouldFlush(9) {
		t.Error("window flushed early")
	}
	if !c.ShouldFlush(10) {
		t.Fatal("window not complete at frame 10")
	}

	stats := c.Flush(10, Snapshot{Wishes: 1, Bursts: 2, BurstsSpawned: 3, FireworksActive: true})
	if stats.WishesAdded != 1 || stats.WishesRejected != 1 || stats.FallingHits != 1 ||
		stats.SettledHits != 2 || stats.Misses != 1 || stats.FireworkWindows != 1 {
		t.Errorf("event counts = %+v", stats)
	}
	if stats.BurstsSpawned != 3 || stats.MorphedMean != 3 {
		t.Errorf("spawned/morphed = %d/%v, want 3/3", stats.BurstsSpawned, stats.MorphedMean)
	}
	if math.Abs(stats.ElapsedSec-1) > 1e-9 {
		t.Errorf("elapsed = %v, want 1", stats.ElapsedSec)
	}

	// Counters reset, spawned is a delta against the previous flush
	next := c.Flush(20, Snapshot{BurstsSpawned: 5})
	if next.WishesAdded != 0 || next.SettledHits != 0 || next.MorphedMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.BurstsSpawned != 2 {
		t.Errorf("spawned delta = %d, want 2", next.BurstsSpawned)
	}
	if next.WindowStartFrame != 10 {
		t.Errorf("window start = %d, want 10", next.WindowStartFrame)
	}
}
