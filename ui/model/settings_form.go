package model

// SettingsForm is the raw text of the settings dialog fields before parsing.
type SettingsForm struct {
	FrameRate    string
	CursorRadius string
	CursorColor  string // #rrggbb
	AutoMinimize string // true/false
}
