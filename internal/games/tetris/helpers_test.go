package tetris

// seqSource is a deterministic RandomSource that cycles through fixed picks.
type seqSource struct {
	seq []int
	i   int
}

func (s *seqSource) Intn(n int) int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

// bar returns the three-cell horizontal shape used by several tests.
func bar(line, column float64) *Shape {
	return NewShape("bar", "blue", line, column, []Offset{{0, 0}, {0, -1}, {0, 1}})
}

// dot returns a single-cell shape.
func dot(line, column float64) *Shape {
	return NewShape("dot", "red", line, column, []Offset{{0, 0}})
}

// newTestGame builds a game whose factory only produces copies of tmpl.
func newTestGame(tmpl *Shape) *Game {
	factory := NewShapeFactoryWithCatalog(&seqSource{}, []*Shape{tmpl})
	return NewGame(nil, factory)
}

// fillRow occupies every cell of a line.
func fillRow(st *GameState, line int, color string) {
	for column := range Columns {
		st.SetCell(NewCell(line, column, color))
	}
}
