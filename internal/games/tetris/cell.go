// Package tetris implements the Tetris game-state engine: the board, falling
// shapes, collision checking, line clearing, scoring and the gravity/input
// state machine, plus the adapters that host it on the terminal platform.
package tetris

// Board dimensions. They are fixed for the lifetime of a game.
const (
	Lines   = 20
	Columns = 10
)

// Cell is one board position. A cell is empty iff its color is unset.
// Cells are values: the board replaces them, it never mutates one in place.
type Cell struct {
	Line   int
	Column int
	Color  string
}

// NewCell creates a cell at the given coordinates.
func NewCell(line, column int, color string) Cell {
	return Cell{Line: line, Column: column, Color: color}
}

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool {
	return c.Color == ""
}
