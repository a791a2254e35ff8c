package domain

import "fmt"

// Maze is a finished grid plus its designated start and end cells. The
// generator returns it fully carved; afterwards it is treated as read-only.
type Maze struct {
	Grid  *Grid `json:"grid" yaml:"grid"`
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Validate checks structural integrity. It is used when a maze crosses a
// trust boundary (loaded from a file or an API request body) before any
// solver touches it.
func (m *Maze) Validate() error {
	if m.Grid == nil {
		return fmt.Errorf("%w: maze has no grid", ErrInvalidDimension)
	}
	if err := CheckDimensions(m.Grid.Width, m.Grid.Height); err != nil {
		return err
	}
	if len(m.Grid.Cells) != m.Grid.Width*m.Grid.Height {
		return fmt.Errorf("%w: cell buffer is %d, want %d",
			ErrInvalidDimension, len(m.Grid.Cells), m.Grid.Width*m.Grid.Height)
	}
	for _, p := range []Point{m.Start, m.End} {
		open, err := m.Grid.IsOpen(p.X, p.Y)
		if err != nil {
			return fmt.Errorf("%w: (%d,%d) outside grid", ErrInvalidEndpoint, p.X, p.Y)
		}
		if !open {
			return fmt.Errorf("%w: (%d,%d) is a wall", ErrInvalidEndpoint, p.X, p.Y)
		}
	}
	return nil
}
