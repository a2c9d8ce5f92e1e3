package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wishsky/components"
)

const (
	nameMaxLen    = 32
	contentMaxLen = 160
)

// WishForm is the "make your wish" modal. It owns its text buffers and
// which box has keyboard focus.
type WishForm struct {
	Name    string
	Content string
	Error   string

	editName    bool
	editContent bool
}

// Reset clears the form and focuses the name box.
func (f *WishForm) Reset() {
	f.Name = ""
	f.Content = ""
	f.Error = ""
	f.editName = true
	f.editContent = false
}

// Draw renders the form and returns the action the user took this frame.
func (f *WishForm) Draw(r *Renderer, screenW, screenH int32) Action {
	t := r.Theme
	r.DrawBackdrop(screenW, screenH)
	panel := r.DrawPanel(screenW, screenH, 440, 380)

	cx := int32(panel.X + panel.Width/2)
	x := panel.X + float32(t.Padding)
	w := panel.Width - float32(2*t.Padding)
	y := int32(panel.Y) + t.Padding

	action := ActionNone
	if r.Button(rl.Rectangle{X: panel.X + panel.Width - 36, Y: panel.Y + 12, Width: 24, Height: 24}, "x") {
		action = ActionClose
	}

	y = r.DrawCentered("MAKE YOUR WISH", cx, y, t.TitleFontSize, t.Accent) + 8

	rl.DrawText("YOUR NAME", int32(x), y, t.SmallFontSize, t.TextMuted)
	y += t.SmallFontSize + 6
	nameBox := rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 36}
	if gui.TextBox(nameBox, &f.Name, nameMaxLen, f.editName) {
		f.editName = !f.editName
		if f.editName {
			f.editContent = false
		}
	}
	if f.Name == "" && !f.editName {
		rl.DrawText("Who are you?", int32(x)+8, y+12, t.FontSize, t.TextFaint)
	}
	y += 36 + 18

	rl.DrawText("WISH FOR 2026", int32(x), y, t.SmallFontSize, t.TextMuted)
	y += t.SmallFontSize + 6
	contentBox := rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 36}
	if gui.TextBox(contentBox, &f.Content, contentMaxLen, f.editContent) {
		f.editContent = !f.editContent
		if f.editContent {
			f.editName = false
		}
	}
	if f.Content == "" && !f.editContent {
		rl.DrawText("What blooms in your heart?", int32(x)+8, y+12, t.FontSize, t.TextFaint)
	}
	y += 36 + 12

	if f.Error != "" {
		r.DrawCentered(f.Error, cx, y, t.FontSize, t.ErrorColor)
	}
	y += t.FontSize + 12

	submit := rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 48}
	if r.Button(submit, "IGNITE 2026") || (rl.IsKeyPressed(rl.KeyEnter) && f.editContent) {
		action = ActionSubmit
	}
	return action
}

// SavedWishView shows one settled wish.
type SavedWishView struct{}

// Draw renders the wish and returns ActionClose when dismissed.
func (SavedWishView) Draw(r *Renderer, wish components.Wish, screenW, screenH int32) Action {
	t := r.Theme
	r.DrawBackdrop(screenW, screenH)
	panel := r.DrawPanel(screenW, screenH, 520, 340)

	cx := int32(panel.X + panel.Width/2)
	y := int32(panel.Y) + t.Padding + 8

	y = r.DrawCentered("A NEW YEAR VISION", cx, y, t.FontSize+2, t.Accent)
	rl.DrawLine(cx-24, y, cx+24, y, t.AccentDim)
	y += 24

	y = r.DrawWrapped(`"`+wish.Content+`"`, cx, y, int32(panel.Width)-2*t.Padding, t.BodyFontSize+4, t.TextColor) + 12
	r.DrawCentered("- BY "+strings.ToUpper(wish.Name), cx, y, t.FontSize+2, t.TextMuted)

	back := rl.Rectangle{X: panel.X + panel.Width/2 - 130, Y: panel.Y + panel.Height - 60, Width: 260, Height: 32}
	if r.Button(back, "[ RETURN TO THE NIGHT SKY ]") {
		return ActionClose
	}
	return ActionNone
}

// BlessingView shows the generated blessing.
type BlessingView struct{}

// Draw renders the blessing scaled in by reveal and returns ActionClose when accepted.
func (BlessingView) Draw(r *Renderer, text string, reveal float32, screenW, screenH int32) Action {
	t := r.Theme
	r.DrawBackdrop(screenW, screenH)

	h := int32(300 + 60*reveal)
	panel := r.DrawPanel(screenW, screenH, int32(float32(600)*(0.9+0.1*reveal)), h)

	cx := int32(panel.X + panel.Width/2)
	y := int32(panel.Y) + t.Padding

	y = r.DrawCentered("2026 PROPHECY", cx, y, t.SmallFontSize, t.Accent) + 16
	r.DrawWrapped(`"`+text+`"`, cx, y, int32(panel.Width)-2*t.Padding, t.BodyFontSize+4, rl.Fade(t.TextColor, reveal))

	accept := rl.Rectangle{X: panel.X + panel.Width/2 - 110, Y: panel.Y + panel.Height - 64, Width: 220, Height: 36}
	if r.Button(accept, "[ ACCEPT BLESSING ]") {
		return ActionClose
	}
	return ActionNone
}
