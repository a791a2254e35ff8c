package domain

// Path is an ordered walk of coordinates from start to end inclusive.
// An empty path means "no route exists"; it is a normal result, not an
// error.
type Path []Point

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// IsEmpty reports whether no route was found.
func (p Path) IsEmpty() bool { return len(p) == 0 }

// Steps returns the number of moves on the path (cells minus one), or 0
// for an empty or single-cell path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
