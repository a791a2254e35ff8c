package domain

import "fmt"

// MinDimension is the smallest accepted grid side. A 5x5 grid is the
// smallest odd-aligned grid with at least one interior wall ring.
const MinDimension = 5

// directions4 lists the orthogonal neighbor offsets: right, down, left, up.
var directions4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is a rectangular open/wall map. Cells is row-major; true means the
// cell is an open passage. The exported fields exist for serialization;
// mutation goes through SetOpen so bounds stay checked.
type Grid struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Cells  []bool `json:"cells" yaml:"cells"`
}

// NewGrid creates a fully walled grid. Width and height must both be odd
// and at least MinDimension so the wall/passage checkerboard is
// representable.
func NewGrid(width, height int) (*Grid, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}, nil
}

// CheckDimensions validates a width/height pair against the carving scheme.
func CheckDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return fmt.Errorf("%w: %dx%d is below the %dx%d minimum",
			ErrInvalidDimension, width, height, MinDimension, MinDimension)
	}
	if width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: %dx%d must have odd sides", ErrInvalidDimension, width, height)
	}
	return nil
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsOpen reports whether the cell at (x, y) is an open passage.
func (g *Grid) IsOpen(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.Cells[y*g.Width+x], nil
}

// SetOpen sets the passage state of the cell at (x, y).
func (g *Grid) SetOpen(x, y int, open bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.Cells[y*g.Width+x] = open
	return nil
}

// openAt is the unchecked fast path used by neighbors and counters.
func (g *Grid) openAt(x, y int) bool {
	return g.Cells[y*g.Width+x]
}

// Neighbors4 returns the up-to-4 orthogonally adjacent in-bounds
// coordinates. It does not filter by wall state; callers decide.
func (g *Grid) Neighbors4(x, y int) []Point {
	result := make([]Point, 0, 4)
	for _, d := range directions4 {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			result = append(result, Point{X: nx, Y: ny})
		}
	}
	return result
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// OpenCells counts the open passages in the grid.
func (g *Grid) OpenCells() int {
	count := 0
	for _, open := range g.Cells {
		if open {
			count++
		}
	}
	return count
}

// OpenPairs counts adjacent open-open cell pairs, each pair once. In a
// perfect maze this equals OpenCells()-1 (the tree property).
func (g *Grid) OpenPairs() int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.openAt(x, y) {
				continue
			}
			if x+1 < g.Width && g.openAt(x+1, y) {
				count++
			}
			if y+1 < g.Height && g.openAt(x, y+1) {
				count++
			}
		}
	}
	return count
}
