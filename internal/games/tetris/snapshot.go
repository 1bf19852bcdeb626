package tetris

import (
	"math"
	"strings"
)

// Fixed origin of the next-shape preview. Spawn-orientation shapes land in
// a 4x6 box whose top-left corner is (0, 0).
const (
	PreviewOriginLine   = 2
	PreviewOriginColumn = -2
	PreviewLines        = 4
	PreviewColumns      = 6
)

// Snapshot is a read-only copy of everything a renderer may show.
type Snapshot struct {
	Board    Board
	Falling  []Cell // Falling shape in board coordinates
	Next     []Cell // Next shape in preview coordinates
	NextName string
	Score    float64
	Paused   bool
	GameOver bool
	Speed    int
	Lines    int
	Pieces   int
}

// Snapshot copies the state for a renderer.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Board:    s.board,
		Score:    s.score,
		Paused:   s.paused,
		GameOver: s.gameOver,
		Speed:    s.speed,
		Lines:    s.lines,
		Pieces:   s.pieces,
	}
	if s.falling != nil {
		snap.Falling = s.falling.AbsoluteCells(0, 0)
	}
	if s.next != nil {
		snap.Next = s.next.AbsoluteCells(PreviewOriginLine, PreviewOriginColumn)
		snap.NextName = s.next.Name
	}
	return snap
}

// ScoreInt returns the score floored to an integer for display.
func (s Snapshot) ScoreInt() int {
	return int(math.Floor(s.Score))
}

// SpeedBar returns glyph repeated once per speed level.
func (s Snapshot) SpeedBar(glyph string) string {
	if s.Speed <= 0 {
		return ""
	}
	return strings.Repeat(glyph, s.Speed)
}

// Renderer draws snapshots. Implementations must not retain or modify
// the snapshot beyond the call.
type Renderer interface {
	Draw(snap Snapshot)
}
