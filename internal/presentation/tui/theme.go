package tui

import "strings"

// Theme maps maze cell roles to terminal colors. Colors are hex strings;
// the renderer degrades them through the active termenv profile, so on a
// dumb terminal everything falls back to plain glyphs.
type Theme struct {
	Name   string
	Wall   string
	Start  string
	End    string
	Marker string
}

// Predefined themes.
var (
	ThemeClassic = Theme{Name: "classic", Wall: "#5f87ff", Start: "#5fff5f", End: "#ff5f5f", Marker: "#ffff5f"}
	ThemeDark    = Theme{Name: "dark", Wall: "#585858", Start: "#5fffff", End: "#ff5fff", Marker: "#eeeeee"}
	ThemeNeon    = Theme{Name: "neon", Wall: "#ff00ff", Start: "#00ffff", End: "#ffff00", Marker: "#00ff00"}
)

// ThemeByName resolves a theme by its (case-insensitive) name.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "", ThemeClassic.Name:
		return ThemeClassic, true
	case ThemeDark.Name:
		return ThemeDark, true
	case ThemeNeon.Name:
		return ThemeNeon, true
	default:
		return Theme{}, false
	}
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	return []string{ThemeClassic.Name, ThemeDark.Name, ThemeNeon.Name}
}

// Glyphs holds the characters used for each cell role.
type Glyphs struct {
	Wall    string
	Passage string
	Start   string
	End     string
	Marker  string
}

var (
	// GlyphsASCII is safe for any terminal and for text export.
	GlyphsASCII = Glyphs{Wall: "#", Passage: " ", Start: "S", End: "E", Marker: "."}
	// GlyphsUnicode uses block and bullet characters for denser output.
	GlyphsUnicode = Glyphs{Wall: "█", Passage: " ", Start: "S", End: "E", Marker: "●"}
)

// GlyphSet picks the glyph set for the unicode toggle.
func GlyphSet(unicode bool) Glyphs {
	if unicode {
		return GlyphsUnicode
	}
	return GlyphsASCII
}
