package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/hedge/internal/logging"
	"github.com/aretw0/hedge/internal/presentation/tui"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the Stdout maze output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// stdoutIsTerminal reports whether stdout is attached to a TTY. When it is
// not (pipes, redirects), maze output drops colors so the bytes stay clean.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newRenderer builds the maze renderer for the requested theme and glyph
// set, honoring the terminal detection.
func newRenderer(themeName string, unicode bool) (*tui.Renderer, error) {
	theme, ok := tui.ThemeByName(themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", themeName, tui.ThemeNames())
	}

	opts := []tui.RendererOption{
		tui.WithTheme(theme),
		tui.WithGlyphs(tui.GlyphSet(unicode)),
	}
	if !stdoutIsTerminal() {
		opts = append(opts, tui.WithProfile(termenv.Ascii))
	}
	return tui.NewRenderer(opts...), nil
}
