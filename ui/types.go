// Package ui draws the wish sky overlays: branding, hint, modals and the
// debug panel. Views hold only their own widget state; the game decides what
// an action means.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Action is what a modal asks the game to do after a frame.
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionClose
)

// Theme holds UI styling constants.
type Theme struct {
	Backdrop      rl.Color
	PanelBg       rl.Color
	PanelBorder   rl.Color
	Accent        rl.Color
	AccentDim     rl.Color
	TextColor     rl.Color
	TextMuted     rl.Color
	TextFaint     rl.Color
	ErrorColor    rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	FontSize      int32
	SmallFontSize int32
	BodyFontSize  int32
	TitleFontSize int32
	HeroFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Backdrop:      rl.Color{R: 0, G: 0, B: 0, A: 160},
		PanelBg:       rl.Color{R: 23, G: 23, B: 23, A: 245},
		PanelBorder:   rl.Color{R: 153, G: 27, B: 27, A: 128},
		Accent:        rl.Color{R: 220, G: 38, B: 38, A: 255},
		AccentDim:     rl.Color{R: 127, G: 29, B: 29, A: 255},
		TextColor:     rl.Color{R: 255, G: 255, B: 255, A: 242},
		TextMuted:     rl.Color{R: 255, G: 255, B: 255, A: 128},
		TextFaint:     rl.Color{R: 255, G: 255, B: 255, A: 51},
		ErrorColor:    rl.Color{R: 248, G: 113, B: 113, A: 255},
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		Padding:       32,
		LineHeight:    16,
		LabelWidth:    90,
		FontSize:      12,
		SmallFontSize: 10,
		BodyFontSize:  20,
		TitleFontSize: 24,
		HeroFontSize:  96,
	}
}
