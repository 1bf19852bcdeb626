package tetris

import "math"

// Offset is the position of a shape cell relative to the shape center.
// Coordinates may be fractional (±0.5) so that pieces whose visual center
// lies between cells rotate in place.
type Offset struct {
	Line   float64
	Column float64
}

// Shape is a falling piece: a center position plus relative cell offsets.
type Shape struct {
	Name         string
	Color        string
	CenterLine   float64
	CenterColumn float64
	cells        []Offset
}

// NewShape creates a shape. The offsets are copied, so the caller may reuse
// the slice.
func NewShape(name, color string, centerLine, centerColumn float64, cells []Offset) *Shape {
	own := make([]Offset, len(cells))
	copy(own, cells)
	return &Shape{
		Name:         name,
		Color:        color,
		CenterLine:   centerLine,
		CenterColumn: centerColumn,
		cells:        own,
	}
}

// RelativeCells returns a copy of the shape's offsets in their current orientation.
func (s *Shape) RelativeCells() []Offset {
	out := make([]Offset, len(s.cells))
	copy(out, s.cells)
	return out
}

// AbsoluteCells returns the shape's cells translated to board coordinates
// (center + offset + origin). Cells whose line is negative are above the
// visible board and are left out.
func (s *Shape) AbsoluteCells(originLine, originColumn int) []Cell {
	out := make([]Cell, 0, len(s.cells))
	for _, off := range s.cells {
		line := int(math.Round(s.CenterLine + off.Line + float64(originLine)))
		column := int(math.Round(s.CenterColumn + off.Column + float64(originColumn)))
		if line < 0 {
			continue
		}
		out = append(out, NewCell(line, column, s.Color))
	}
	return out
}

// Move shifts the shape center.
func (s *Shape) Move(dLine, dColumn float64) {
	s.CenterLine += dLine
	s.CenterColumn += dColumn
}

// Rotate turns every offset by 90 degrees: (line, column) -> (column, -line).
func (s *Shape) Rotate() {
	for i, off := range s.cells {
		s.cells[i] = Offset{Line: off.Column, Column: -off.Line}
	}
}

// UndoRotate is the exact inverse of Rotate: (line, column) -> (-column, line).
func (s *Shape) UndoRotate() {
	for i, off := range s.cells {
		s.cells[i] = Offset{Line: -off.Column, Column: off.Line}
	}
}

// Clone returns an independent copy of the shape.
func (s *Shape) Clone() *Shape {
	return NewShape(s.Name, s.Color, s.CenterLine, s.CenterColumn, s.cells)
}
