package tui

import (
	"strings"
	"testing"

	"github.com/aretw0/hedge/pkg/domain"
	"github.com/muesli/termenv"
)

func corridorMaze(t *testing.T) *domain.Maze {
	t.Helper()
	g, err := domain.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}} {
		_ = g.SetOpen(p.X, p.Y, true)
	}
	return &domain.Maze{Grid: g, Start: domain.Point{X: 1, Y: 1}, End: domain.Point{X: 3, Y: 1}}
}

func TestRender_PlainASCII(t *testing.T) {
	m := corridorMaze(t)
	r := NewRenderer(WithProfile(termenv.Ascii))

	got := r.Render(m, nil)
	want := strings.Join([]string{
		"#####",
		"#S E#",
		"#####",
		"#####",
		"#####",
	}, "\n") + "\n"

	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRender_PathOverlay(t *testing.T) {
	m := corridorMaze(t)
	r := NewRenderer(WithProfile(termenv.Ascii))

	path := domain.Path{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	got := r.Render(m, path)

	lines := strings.Split(got, "\n")
	if lines[1] != "#S.E#" {
		t.Errorf("solved row = %q, want %q (marker between endpoints)", lines[1], "#S.E#")
	}
}

func TestRender_UnicodeGlyphs(t *testing.T) {
	m := corridorMaze(t)
	r := NewRenderer(WithProfile(termenv.Ascii), WithGlyphs(GlyphsUnicode))

	got := r.Render(m, nil)
	if !strings.Contains(got, "█") {
		t.Error("expected unicode wall glyphs in output")
	}
}

func TestThemeByName(t *testing.T) {
	if th, ok := ThemeByName("NEON"); !ok || th.Name != "neon" {
		t.Errorf("ThemeByName(NEON) = %v, %v", th, ok)
	}
	if th, ok := ThemeByName(""); !ok || th.Name != "classic" {
		t.Errorf("ThemeByName(\"\") = %v, %v, want classic default", th, ok)
	}
	if _, ok := ThemeByName("sepia"); ok {
		t.Error("ThemeByName(sepia) should not resolve")
	}
}
