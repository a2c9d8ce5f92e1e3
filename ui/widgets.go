package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawBackdrop dims the whole screen behind a modal.
func (r *Renderer) DrawBackdrop(width, height int32) {
	rl.DrawRectangle(0, 0, width, height, r.Theme.Backdrop)
}

// DrawPanel draws a centred panel and returns its bounds.
func (r *Renderer) DrawPanel(screenW, screenH, width, height int32) rl.Rectangle {
	rect := rl.Rectangle{
		X:      float32((screenW - width) / 2),
		Y:      float32((screenH - height) / 2),
		Width:  float32(width),
		Height: float32(height),
	}
	rl.DrawRectangleRec(rect, r.Theme.PanelBg)
	rl.DrawRectangleLinesEx(rect, 1, r.Theme.PanelBorder)
	return rect
}

// DrawCentered draws a single line of text centred on cx and returns the y below it.
func (r *Renderer) DrawCentered(text string, cx, y, size int32, color rl.Color) int32 {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
	return y + size + size/2
}

// DrawWrapped draws text word-wrapped to maxWidth, each line centred on cx.
// Returns the y below the last line.
func (r *Renderer) DrawWrapped(text string, cx, y, maxWidth, size int32, color rl.Color) int32 {
	measure := func(s string) int32 { return rl.MeasureText(s, size) }
	for _, line := range wrapWords(text, maxWidth, measure) {
		y = r.DrawCentered(line, cx, y, size, color)
	}
	return y
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// Button draws a raygui button and reports whether it was pressed.
func (r *Renderer) Button(bounds rl.Rectangle, text string) bool {
	return gui.Button(bounds, text)
}

// wrapWords greedily splits text into lines no wider than maxWidth.
// A single word wider than maxWidth gets its own line.
func wrapWords(text string, maxWidth int32, measure func(string) int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
