package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// HeadroomLines is the number of top lines that end the game when a frozen
// shape lands in them.
const HeadroomLines = 2

// Speed limits. Cadence for each level is chosen by the scheduler.
const (
	MinSpeed = 1
	MaxSpeed = 5
)

// Board is the dense, row-major grid. Every position always holds a Cell.
type Board [Lines][Columns]Cell

// GameState holds the board and the session state around it.
type GameState struct {
	board    Board
	falling  *Shape // nil after a freeze until the next shape is promoted
	next     *Shape
	score    float64
	paused   bool
	gameOver bool
	speed    int
	lines    int // total lines cleared
	pieces   int // total shapes frozen
}

// NewGameState creates a state with an empty board at the minimum speed.
func NewGameState() *GameState {
	return &GameState{
		board: CreateBoard(),
		speed: MinSpeed,
	}
}

// CreateBoard builds Lines rows of Columns empty cells, each tagged with its
// own coordinates.
func CreateBoard() Board {
	var b Board
	for line := range Lines {
		b[line] = emptyRow(line)
	}
	return b
}

// emptyRow returns a row of empty cells for the given line.
func emptyRow(line int) [Columns]Cell {
	var row [Columns]Cell
	for column := range Columns {
		row[column] = NewCell(line, column, "")
	}
	return row
}

// Board returns a copy of the grid.
func (s *GameState) Board() Board {
	return s.board
}

// CellAt returns the cell at the given position. Out-of-range positions
// return an empty cell.
func (s *GameState) CellAt(line, column int) Cell {
	if line < 0 || line >= Lines || column < 0 || column >= Columns {
		return NewCell(line, column, "")
	}
	return s.board[line][column]
}

// SetCell replaces the cell at its own coordinates. Out-of-range cells are ignored.
func (s *GameState) SetCell(c Cell) {
	if c.Line < 0 || c.Line >= Lines || c.Column < 0 || c.Column >= Columns {
		return
	}
	s.board[c.Line][c.Column] = c
}

// FallingShape returns the controllable shape, or nil.
func (s *GameState) FallingShape() *Shape { return s.falling }

// NextShape returns the preview shape, or nil.
func (s *GameState) NextShape() *Shape { return s.next }

// SetFallingShape replaces the falling shape wholesale.
func (s *GameState) SetFallingShape(shape *Shape) { s.falling = shape }

// SetNextShape replaces the preview shape wholesale.
func (s *GameState) SetNextShape(shape *Shape) { s.next = shape }

// Score returns the accumulated score.
func (s *GameState) Score() float64 { return s.score }

// Paused reports whether the game is paused.
func (s *GameState) Paused() bool { return s.paused }

// GameOver reports whether the game has ended.
func (s *GameState) GameOver() bool { return s.gameOver }

// Speed returns the current speed level.
func (s *GameState) Speed() int { return s.speed }

// LinesCleared returns the total number of lines removed.
func (s *GameState) LinesCleared() int { return s.lines }

// PiecesFrozen returns the total number of shapes committed to the board.
func (s *GameState) PiecesFrozen() int { return s.pieces }

// TogglePause flips the pause flag.
func (s *GameState) TogglePause() { s.paused = !s.paused }

// SetSpeed sets the speed level, clamped to [MinSpeed, MaxSpeed].
func (s *GameState) SetSpeed(level int) {
	s.speed = core.Clamp(level, MinSpeed, MaxSpeed)
}

// IsValid reports whether the falling shape fits: every visible cell lies
// below the bottom edge (line < Lines), within the side walls, and on an
// empty board cell. Lines above the board are allowed. With no falling
// shape the state is always valid.
func (s *GameState) IsValid() bool {
	if s.falling == nil {
		return true
	}
	for _, c := range s.falling.AbsoluteCells(0, 0) {
		if c.Line >= Lines || c.Column < 0 || c.Column >= Columns {
			return false
		}
		if !s.board[c.Line][c.Column].IsEmpty() {
			return false
		}
	}
	return true
}

// FreezeShape commits the falling shape into the board. A committed cell
// inside the headroom ends the game and leaves no falling shape; otherwise
// the next shape is promoted and the caller must supply a new next shape.
func (s *GameState) FreezeShape() {
	if s.falling == nil {
		return
	}

	for _, c := range s.falling.AbsoluteCells(0, 0) {
		s.SetCell(c)
		if c.Line < HeadroomLines {
			s.gameOver = true
		}
	}
	s.pieces++

	if s.gameOver {
		s.falling = nil
		return
	}
	s.falling = s.next
	s.next = nil
}

// CompleteLines removes every full row, shifts the rows above it down and
// scores the result. Returns the number of rows removed.
func (s *GameState) CompleteLines() int {
	var kept [][Columns]Cell
	for line := range Lines {
		if rowFull(s.board[line]) {
			continue
		}
		kept = append(kept, s.board[line])
	}

	cleared := Lines - len(kept)
	if cleared > 0 {
		var b Board
		for line := range cleared {
			b[line] = emptyRow(line)
		}
		for i, row := range kept {
			line := cleared + i
			for column, c := range row {
				b[line][column] = NewCell(line, column, c.Color)
			}
		}
		s.board = b
		s.lines += cleared
	}

	s.IncreaseScore(cleared)
	return cleared
}

// rowFull reports whether a row has no empty cells.
func rowFull(row [Columns]Cell) bool {
	for _, c := range row {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// IncreaseScore adds n*100*(1+n/10) for n lines cleared at once, so that
// simultaneous clears are rewarded super-linearly (1 -> 110, 4 -> 560).
func (s *GameState) IncreaseScore(n int) {
	if n <= 0 {
		return
	}
	// 100n + 10n² is the same polynomial without the inexact 1/10.
	s.score += float64(100*n + 10*n*n)
}
