// Package tui renders mazes for the terminal: themed glyph output, the
// banner, and the markdown algorithm guide.
package tui

import (
	"strings"

	"github.com/aretw0/hedge/pkg/domain"
	"github.com/muesli/termenv"
)

// Renderer turns a maze (and optionally a solution path) into a string,
// one glyph per cell.
type Renderer struct {
	profile termenv.Profile
	theme   Theme
	glyphs  Glyphs
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTheme sets the color theme.
func WithTheme(theme Theme) RendererOption {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithGlyphs sets the glyph set.
func WithGlyphs(glyphs Glyphs) RendererOption {
	return func(r *Renderer) {
		r.glyphs = glyphs
	}
}

// WithProfile overrides the detected color profile. Pass termenv.Ascii to
// force plain, colorless output (used by the text exporter and in tests).
func WithProfile(profile termenv.Profile) RendererOption {
	return func(r *Renderer) {
		r.profile = profile
	}
}

// NewRenderer builds a renderer with the detected terminal color profile,
// the classic theme and ASCII glyphs.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		profile: termenv.ColorProfile(),
		theme:   ThemeClassic,
		glyphs:  GlyphsASCII,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) colorize(glyph, hex string) string {
	if hex == "" {
		return glyph
	}
	return r.profile.String(glyph).Foreground(r.profile.Color(hex)).String()
}

// Render draws the maze with the path overlaid. Pass an empty path to draw
// the unsolved maze.
func (r *Renderer) Render(m *domain.Maze, path domain.Path) string {
	onPath := make(map[domain.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var sb strings.Builder
	for y := 0; y < m.Grid.Height; y++ {
		for x := 0; x < m.Grid.Width; x++ {
			p := domain.Point{X: x, Y: y}
			switch {
			case p == m.Start:
				sb.WriteString(r.colorize(r.glyphs.Start, r.theme.Start))
			case p == m.End:
				sb.WriteString(r.colorize(r.glyphs.End, r.theme.End))
			case onPath[p]:
				sb.WriteString(r.colorize(r.glyphs.Marker, r.theme.Marker))
			default:
				if open, _ := m.Grid.IsOpen(x, y); open {
					sb.WriteString(r.glyphs.Passage)
				} else {
					sb.WriteString(r.colorize(r.glyphs.Wall, r.theme.Wall))
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
