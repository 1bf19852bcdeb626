package tetris

import "testing"

func TestCellIsEmpty(t *testing.T) {
	if !NewCell(0, 0, "").IsEmpty() {
		t.Error("cell without color should be empty")
	}
	if NewCell(0, 0, "red").IsEmpty() {
		t.Error("colored cell should not be empty")
	}
}

func TestAbsoluteCellsHidesNegativeLines(t *testing.T) {
	s := NewShape("T", "magenta", 0, 4, []Offset{{0, -1}, {0, 0}, {0, 1}, {-1, 0}})

	cells := s.AbsoluteCells(0, 0)
	if len(cells) != 3 {
		t.Fatalf("AbsoluteCells() returned %d cells, expected 3 visible", len(cells))
	}
	for _, c := range cells {
		if c.Line != 0 {
			t.Errorf("cell %+v should be on line 0", c)
		}
		if c.Color != "magenta" {
			t.Errorf("cell color = %q, expected magenta", c.Color)
		}
	}

	// Same shape one line lower shows all four cells
	if got := len(s.AbsoluteCells(1, 0)); got != 4 {
		t.Errorf("AbsoluteCells(1, 0) returned %d cells, expected 4", got)
	}
}

func TestAbsoluteCellsFractionalCenter(t *testing.T) {
	o := NewShape("O", "yellow", 0.5, 4.5, []Offset{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, -0.5}, {0.5, 0.5}})

	want := map[[2]int]bool{{0, 4}: true, {0, 5}: true, {1, 4}: true, {1, 5}: true}
	for _, c := range o.AbsoluteCells(0, 0) {
		if !want[[2]int{c.Line, c.Column}] {
			t.Errorf("unexpected cell (%d, %d)", c.Line, c.Column)
		}
		delete(want, [2]int{c.Line, c.Column})
	}
	if len(want) != 0 {
		t.Errorf("missing cells: %v", want)
	}
}

func TestRotate(t *testing.T) {
	s := NewShape("x", "red", 0, 0, []Offset{{1, 0}, {0, 2}})
	s.Rotate()

	got := s.RelativeCells()
	expected := []Offset{{0, -1}, {2, 0}}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("after Rotate cell %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestRotateUndoRoundTrip(t *testing.T) {
	for _, tmpl := range Classic() {
		for turns := 0; turns < 4; turns++ {
			s := tmpl.Clone()
			for range turns {
				s.Rotate()
			}
			before := s.RelativeCells()

			s.Rotate()
			s.UndoRotate()

			after := s.RelativeCells()
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("%s after %d turns: cell %d = %+v, expected %+v", tmpl.Name, turns, i, after[i], before[i])
				}
			}
		}
	}
}

func TestFourRotationsIsIdentity(t *testing.T) {
	for _, tmpl := range Classic() {
		s := tmpl.Clone()
		for range 4 {
			s.Rotate()
		}
		orig := tmpl.RelativeCells()
		for i, off := range s.RelativeCells() {
			if off != orig[i] {
				t.Errorf("%s: cell %d = %+v after four rotations, expected %+v", tmpl.Name, i, off, orig[i])
			}
		}
	}
}

func TestORotatesInPlace(t *testing.T) {
	o := Classic()[1]
	if o.Name != "O" {
		t.Fatalf("expected O at index 1, got %s", o.Name)
	}

	cellSet := func(s *Shape) map[[2]int]bool {
		m := make(map[[2]int]bool)
		for _, c := range s.AbsoluteCells(5, 0) {
			m[[2]int{c.Line, c.Column}] = true
		}
		return m
	}

	before := cellSet(o)
	o.Rotate()
	after := cellSet(o)
	for k := range before {
		if !after[k] {
			t.Errorf("O piece moved off cell %v when rotated", k)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := bar(3, 3)
	b := a.Clone()

	a.Rotate()
	a.Move(1, 1)

	if b.CenterLine != 3 || b.CenterColumn != 3 {
		t.Errorf("clone center moved to (%v, %v)", b.CenterLine, b.CenterColumn)
	}
	if b.RelativeCells()[1] != (Offset{0, -1}) {
		t.Errorf("clone offsets changed: %+v", b.RelativeCells())
	}
}

func TestNewShapeCopiesOffsets(t *testing.T) {
	offsets := []Offset{{0, 0}, {0, 1}}
	s := NewShape("x", "red", 0, 0, offsets)
	offsets[0] = Offset{9, 9}

	if s.RelativeCells()[0] != (Offset{0, 0}) {
		t.Error("NewShape should copy the offsets slice")
	}
}
