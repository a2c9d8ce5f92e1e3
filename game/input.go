package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes pointer and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.debugMode = !g.debugMode
	}
	if rl.IsKeyPressed(rl.KeyEscape) && g.modal != ModalNone {
		g.CloseModal()
	}

	// Only real movement updates the pointer, so it starts far off-screen
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		m := rl.GetMousePosition()
		g.PointerMoved(m.X, m.Y)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		g.Click(m.X, m.Y)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// Resize propagates new viewport dimensions to the engines and renderers.
func (g *Game) Resize(w, h float32) {
	if w == g.width && h == g.height {
		return
	}
	g.width = w
	g.height = h

	g.snow.Resize(w, h)
	g.fireworks.Resize(w, h)
	if g.fireworkRenderer != nil {
		g.fireworkRenderer.Resize(int32(w), int32(h))
	}
}
