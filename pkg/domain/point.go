package domain

// Point is a cell coordinate in a grid. X grows to the right, Y grows down.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns the point translated by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the L1 distance to other. It never overestimates the
// true remaining cost on a 4-connected unit grid, which makes it the
// admissible heuristic used by A*.
func (p Point) Manhattan(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
