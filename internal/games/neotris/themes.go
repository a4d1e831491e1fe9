package neotris

import "github.com/teodorv/neotris/internal/core"

// Theme is a fixed record of named colors. Themes form a closed set of
// presets; selecting one is choosing among them, never a dynamic lookup.
type Theme struct {
	Name        string
	PieceColors [KindCount]core.Color
	Border      core.Color
	Text        core.Color
	Accent      core.Color
	Ghost       core.Color
}

// Built-in theme presets. Neon is the default.
var themes = []Theme{
	{
		Name: "Neon",
		PieceColors: [KindCount]core.Color{
			KindI: core.ColorBrightCyan,
			KindJ: core.ColorBrightBlue,
			KindL: core.ColorOrange,
			KindO: core.ColorBrightYellow,
			KindS: core.ColorBrightGreen,
			KindT: core.ColorBrightMagenta,
			KindZ: core.ColorBrightRed,
		},
		Border: core.ColorBrightCyan,
		Text:   core.ColorCyan,
		Accent: core.ColorBrightMagenta,
		Ghost:  core.ColorGray,
	},
	{
		Name: "Dark",
		PieceColors: [KindCount]core.Color{
			KindI: core.ColorCyan,
			KindJ: core.ColorBlue,
			KindL: core.ColorYellow,
			KindO: core.ColorYellow,
			KindS: core.ColorGreen,
			KindT: core.ColorMagenta,
			KindZ: core.ColorRed,
		},
		Border: core.ColorGray,
		Text:   core.ColorGray,
		Accent: core.ColorWhite,
		Ghost:  core.ColorDarkGray,
	},
	{
		Name: "Retro",
		PieceColors: [KindCount]core.Color{
			KindI: core.ColorWhite,
			KindJ: core.ColorBrightBlue,
			KindL: core.ColorBrightRed,
			KindO: core.ColorBrightYellow,
			KindS: core.ColorBrightGreen,
			KindT: core.ColorBrightMagenta,
			KindZ: core.ColorOrange,
		},
		Border: core.ColorWhite,
		Text:   core.ColorWhite,
		Accent: core.ColorBrightWhite,
		Ghost:  core.ColorGray,
	},
}

// ThemeNames returns the names of all presets, in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// themeIndexByName returns the preset index for a name, or 0 (Neon) when
// the name is unknown.
func themeIndexByName(name string) int {
	for i, t := range themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
