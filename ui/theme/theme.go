package theme

// Palette constants and SetDark activate the base theme and configure the
// semantic widget styles of the recorder window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // console
	ColorPrimary   = "#2563eb" // start button
	ColorDanger    = "#dc2626" // stop button, recording badge
	ColorAccent    = "#10b981" // idle badge
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Primary:   "#3b82f6",
			Danger:    "#ef4444",
			Accent:    "#10b981",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleIdleLabel     = "idle.TLabel"
	StyleRecordingLbl  = "recording.TLabel"
)

// internal flag for current mode
var darkMode bool

// SetDark selects the palette and (re)applies styles. Widgets created
// afterwards read their colours from CurrentPalette.
func SetDark(dark bool) {
	darkMode = dark
	applyStyles(CurrentPalette())
}

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))

	button := func(name, bg string) {
		StyleConfigure(name,
			Background(bg),
			Foreground("white"),
			Padding("4p 3p"),
			Borderwidth(1),
			Relief("ridge"),
		)
	}
	button(StylePrimaryButton, p.Primary)
	button(StyleDangerButton, p.Danger)

	badge := func(name, bg string) {
		StyleConfigure(name,
			Foreground("white"),
			Background(bg),
			Padding("4p 2p"),
			Borderwidth(1),
			Relief("groove"),
		)
	}
	badge(StyleIdleLabel, p.Accent)
	badge(StyleRecordingLbl, p.Danger)
}
