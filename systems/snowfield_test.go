package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("", "")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func newTestField(t *testing.T) *SnowField {
	t.Helper()
	return NewSnowField(testConfig(t), 800, 600, rand.New(rand.NewSource(1)))
}

func TestSnowFieldPoolSizeIsStable(t *testing.T) {
	f := newTestField(t)
	want := len(f.Particles)
	if want != 250 {
		t.Fatalf("pool size = %d, want 250", want)
	}

	for i := 0; i < 2000; i++ {
		f.Update()
		if i%500 == 0 {
			f.Resize(float32(400+i/4), 300)
		}
	}
	if len(f.Particles) != want {
		t.Errorf("pool size after updates and resizes = %d, want %d", len(f.Particles), want)
	}
}

func TestSnowFieldRecyclesWithinBounds(t *testing.T) {
	f := newTestField(t)
	_, h := f.Size()

	for i := 0; i < 3000; i++ {
		f.Update()
		for j := range f.Particles {
			y := f.Particles[j].Y
			if y < -100 || y >= h+50 {
				t.Fatalf("frame %d: particle %d at y=%v outside [-100, h+50)", i, j, y)
			}
		}
	}
}

func TestSnowFieldRecycleRespawnsAbove(t *testing.T) {
	f := newTestField(t)
	_, h := f.Size()
	f.Particles[0].Y = h + 19.9
	f.Particles[0].Speed = 0.5

	f.Update()

	if y := f.Particles[0].Y; y >= 0 || y < -100 {
		t.Errorf("recycled y = %v, want in [-100, 0)", y)
	}
}

func TestSnowFieldMorphsBeforeRecycle(t *testing.T) {
	f := newTestField(t)
	_, h := f.Size()
	f.Particles = f.Particles[:1]
	p := &f.Particles[0]
	p.X, p.Y = 400, h+19.9
	p.Speed, p.Wind = 0.5, 0

	f.SetPointer(400, h+20)
	f.Update()

	if f.MorphedCount() != 1 {
		t.Errorf("MorphedCount = %d, want 1 for the flake at its last drawn position", f.MorphedCount())
	}
	if p.Y >= 0 {
		t.Errorf("flake not recycled, y = %v", p.Y)
	}
	if p.Morphed {
		t.Error("respawned flake kept its morph state")
	}
}

func TestSnowFieldMorphOnlyWithinRadius(t *testing.T) {
	f := newTestField(t)
	for i := range f.Particles {
		f.Particles[i].Speed = 0
		f.Particles[i].Wind = 0
		f.Particles[i].X = 10
		f.Particles[i].Y = 10
	}
	f.Particles[0].X, f.Particles[0].Y = 400, 300
	f.Particles[1].X, f.Particles[1].Y = 479, 300
	f.Particles[2].X, f.Particles[2].Y = 480, 300

	f.SetPointer(400, 300)
	f.Update()

	tests := []struct {
		idx  int
		want bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, false},
	}
	for _, tt := range tests {
		if got := f.Particles[tt.idx].Morphed; got != tt.want {
			t.Errorf("particle %d morphed = %v, want %v", tt.idx, got, tt.want)
		}
	}
	if f.MorphedCount() != 2 {
		t.Errorf("MorphedCount = %d, want 2", f.MorphedCount())
	}
}

func TestSnowFieldNoMorphBeforePointerMoves(t *testing.T) {
	f := newTestField(t)
	f.Update()
	if f.MorphedCount() != 0 {
		t.Errorf("MorphedCount = %d before any pointer move", f.MorphedCount())
	}
}

func TestClickEmptyWishListMissesBottom(t *testing.T) {
	f := newTestField(t)
	f.Particles = f.Particles[:0]

	var settled int
	f.SetCallbacks(FieldCallbacks{OnSettledHit: func(components.Wish) { settled++ }})

	hit := f.Click(400, 540)
	if hit.Kind != HitNone || settled != 0 {
		t.Errorf("hit = %+v, settled calls = %d; want miss", hit, settled)
	}
}

func TestClickFallingTakesPriority(t *testing.T) {
	f := newTestField(t)
	f.SetWishes([]components.Wish{{ID: "a", Name: "Ada", Content: "peace"}})
	markers := f.Markers()

	// Park a flake on top of the only marker
	for i := range f.Particles {
		f.Particles[i].X, f.Particles[i].Y = -500, -500
	}
	f.Particles[7].X, f.Particles[7].Y = markers[0].X, markers[0].Y

	var falling, settled int
	f.SetCallbacks(FieldCallbacks{
		OnFallingHit: func() { falling++ },
		OnSettledHit: func(components.Wish) { settled++ },
	})

	hit := f.Click(markers[0].X, markers[0].Y)
	if hit.Kind != HitFalling || hit.Index != 7 {
		t.Errorf("hit = %+v, want falling particle 7", hit)
	}
	if falling != 1 || settled != 0 {
		t.Errorf("callbacks falling=%d settled=%d, want 1/0", falling, settled)
	}
}

func TestClickSettledMarker(t *testing.T) {
	f := newTestField(t)
	for i := range f.Particles {
		f.Particles[i].X, f.Particles[i].Y = -500, -500
	}
	wishes := []components.Wish{
		{ID: "a", Name: "Ada", Content: "peace"},
		{ID: "b", Name: "Bo", Content: "health"},
	}
	f.SetWishes(wishes)
	markers := f.Markers()

	var got components.Wish
	f.SetCallbacks(FieldCallbacks{OnSettledHit: func(w components.Wish) { got = w }})

	hit := f.Click(markers[1].X+39, markers[1].Y)
	if hit.Kind != HitSettled || got.ID != "b" {
		t.Errorf("hit = %+v got = %+v, want wish b", hit, got)
	}

	// Exactly at the hit radius is a miss
	if hit := f.HitTest(markers[1].X+40, markers[1].Y); hit.Kind != HitNone {
		t.Errorf("boundary hit = %+v, want miss", hit)
	}
}

func TestMarkerLayout(t *testing.T) {
	cfg := testConfig(t).Markers
	cfg.MaxSpacing = 0

	tests := []struct {
		name  string
		n     int
		width float32
		wantX []float32
	}{
		{"none", 0, 800, nil},
		{"one", 1, 800, []float32{400}},
		{"three", 3, 800, []float32{200, 400, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkerLayout(tt.n, tt.width, 600, cfg)
			if len(got) != len(tt.wantX) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantX))
			}
			for i, x := range tt.wantX {
				if got[i].X != x {
					t.Errorf("x[%d] = %v, want %v", i, got[i].X, x)
				}
				if got[i].Y != 540 {
					t.Errorf("y[%d] = %v, want 540", i, got[i].Y)
				}
			}
		})
	}
}

func TestMarkerLayoutCappedStaysCentred(t *testing.T) {
	cfg := testConfig(t).Markers
	cfg.MaxSpacing = 100

	got := MarkerLayout(2, 1200, 600, cfg)
	if got[0].X != 550 || got[1].X != 650 {
		t.Errorf("capped layout = %v, want x 550/650", got)
	}

	again := MarkerLayout(2, 1200, 600, cfg)
	for i := range got {
		if got[i] != again[i] {
			t.Errorf("layout not deterministic at %d: %v vs %v", i, got[i], again[i])
		}
	}
}

func TestMarkerPhaseWraps(t *testing.T) {
	cfg := testConfig(t).Markers
	for _, ms := range []int64{0, 1, 12566, 1e12} {
		p := MarkerPhase(time.UnixMilli(ms), cfg)
		if p < 0 || p >= 6.2832 {
			t.Errorf("phase at %dms = %v, want in [0, 2pi)", ms, p)
		}
	}
}
