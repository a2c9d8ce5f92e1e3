package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/components"
	"github.com/pthm-cable/wishsky/systems"
)

// GL blend constants for a destination-out erase: dst = dst * (1 - src.a).
const (
	glZero             = 0
	glOneMinusSrcAlpha = 0x0303
	glFuncAdd          = 0x8006
)

// particleBlend composites particles source-over onto the trail layer.
const particleBlend = rl.BlendAlpha

// FireworkRenderer draws bursts into a persistent layer that is partially
// erased each frame, leaving fading trails behind moving particles.
type FireworkRenderer struct {
	layer       rl.RenderTexture2D
	width       int32
	height      int32
	fade        float32
	initialized bool
}

// NewFireworkRenderer creates a renderer that erases fade of the layer per frame.
func NewFireworkRenderer(width, height int32, fade float32) *FireworkRenderer {
	return &FireworkRenderer{width: width, height: height, fade: fade}
}

// Init allocates the layer (must be called after raylib window is created).
func (r *FireworkRenderer) Init() {
	if r.initialized {
		return
	}
	r.layer = rl.LoadRenderTexture(r.width, r.height)
	rl.BeginTextureMode(r.layer)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
	r.initialized = true
}

// Resize reallocates the layer. Existing trails are discarded.
func (r *FireworkRenderer) Resize(width, height int32) {
	if width == r.width && height == r.height {
		return
	}
	r.Unload()
	r.width = width
	r.height = height
	r.Init()
}

// Update fades the layer and draws the current frame of every visible particle into it.
func (r *FireworkRenderer) Update(fw *systems.Fireworks) {
	if !r.initialized {
		r.Init()
	}

	rl.BeginTextureMode(r.layer)

	rl.SetBlendFactors(glZero, glOneMinusSrcAlpha, glFuncAdd)
	rl.BeginBlendMode(rl.BlendCustom)
	rl.DrawRectangle(0, 0, r.width, r.height, rl.Color{A: uint8(r.fade * 255)})
	rl.EndBlendMode()

	rl.BeginBlendMode(particleBlend)
	fw.Each(func(_ *components.BurstOrigin, _ *components.BurstAge, parts *components.BurstParticles) {
		for i := range parts.Particles {
			p := &parts.Particles[i]
			if !p.Visible() {
				continue
			}
			drawParticle(p, parts.Colors[p.Color])
		}
	})
	rl.EndBlendMode()

	rl.EndTextureMode()
}

// Draw composites the layer onto the screen.
func (r *FireworkRenderer) Draw() {
	if !r.initialized {
		return
	}
	// Render textures are stored upside down
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.width), Height: -float32(r.height)}
	rl.DrawTextureRec(r.layer.Texture, src, rl.Vector2{}, rl.White)
}

func drawParticle(p *components.BurstParticle, c components.RGB) {
	color := withAlpha(c, p.Alpha)

	switch p.Kind {
	case components.KindStreak:
		if p.History.Len() < 2 {
			return
		}
		prev := p.History.At(0)
		for i := 1; i < p.History.Len(); i++ {
			cur := p.History.At(i)
			rl.DrawLineEx(rl.Vector2{X: prev.X, Y: prev.Y}, rl.Vector2{X: cur.X, Y: cur.Y}, p.Size, color)
			// Round joins and caps
			rl.DrawCircleV(rl.Vector2{X: cur.X, Y: cur.Y}, p.Size/2, color)
			prev = cur
		}
		head := withAlpha(tint(c, white, 0.6), p.Alpha)
		rl.DrawCircleV(rl.Vector2{X: prev.X, Y: prev.Y}, p.Size*0.75, head)

	case components.KindSpark:
		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, p.Size, color)

	case components.KindGlowOrb:
		rl.DrawCircleGradient(int32(p.X), int32(p.Y), p.Size, color, withAlpha(c, 0))
	}
}

// Unload frees the layer.
func (r *FireworkRenderer) Unload() {
	if r.initialized {
		rl.UnloadRenderTexture(r.layer)
		r.initialized = false
	}
}

// SetFade changes the per-frame erase fraction.
func (r *FireworkRenderer) SetFade(fade float32) {
	r.fade = fade
}
