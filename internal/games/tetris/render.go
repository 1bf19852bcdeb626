package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield on the screen. Each board cell is two characters
// wide so blocks look square in a terminal.
const (
	cellWidth   = 2
	boardWidth  = Columns*cellWidth + 2 // +2 for the frame
	boardHeight = Lines + 2
	sideWidth   = PreviewColumns*cellWidth + 2
	layoutGap   = 2
	layoutWidth = boardWidth + layoutGap + sideWidth
)

// Visual characters for rendering
const (
	blockLeft  = '['
	blockRight = ']'
	emptyDot   = '·'
	speedGlyph = "▮"
)

// MinScreenW and MinScreenH are the smallest screen the layout fits on.
const (
	MinScreenW = layoutWidth
	MinScreenH = boardHeight
)

// ScreenRenderer projects snapshots onto a core.Screen.
type ScreenRenderer struct {
	dst *core.Screen
}

// NewScreenRenderer creates a renderer drawing into dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// Draw renders the board, the falling shape, the preview and the HUD.
func (r *ScreenRenderer) Draw(snap Snapshot) {
	dst := r.dst
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	originX := (dst.Width() - layoutWidth) / 2
	originY := (dst.Height() - boardHeight) / 2

	r.drawBoard(snap, originX, originY)
	r.drawSidebar(snap, originX+boardWidth+layoutGap, originY)

	switch {
	case snap.GameOver:
		r.drawOverlay(originX, originY, "GAME OVER", "R restart")
	case snap.Paused:
		r.drawOverlay(originX, originY, "PAUSED", "P resume")
	}
}

// drawBoard draws the frame, the frozen cells and the falling shape.
func (r *ScreenRenderer) drawBoard(snap Snapshot, x, y int) {
	r.dst.DrawBox(core.NewRect(x, y, boardWidth, boardHeight))

	for line := range Lines {
		for column := range Columns {
			c := snap.Board[line][column]
			if c.IsEmpty() {
				r.dst.Set(x+1+column*cellWidth, y+1+line, emptyDot)
				continue
			}
			r.drawBlock(x+1, y+1, c)
		}
	}

	for _, c := range snap.Falling {
		r.drawBlock(x+1, y+1, c)
	}
}

// drawBlock draws one occupied cell relative to an inner origin.
func (r *ScreenRenderer) drawBlock(x, y int, c Cell) {
	color := core.ColorByName(c.Color)
	px := x + c.Column*cellWidth
	py := y + c.Line
	r.dst.SetColored(px, py, blockLeft, color)
	r.dst.SetColored(px+1, py, blockRight, color)
}

// drawSidebar draws the next-shape preview and the score panel.
func (r *ScreenRenderer) drawSidebar(snap Snapshot, x, y int) {
	r.dst.DrawText(x, y, "NEXT")
	box := core.NewRect(x, y+1, sideWidth, PreviewLines+2)
	r.dst.DrawBox(box)
	area := core.NewRect(0, 0, PreviewColumns, PreviewLines)
	for _, c := range snap.Next {
		if !area.Contains(c.Column, c.Line) {
			continue
		}
		r.drawBlock(box.X+1, box.Y+1, c)
	}

	hy := box.Bottom() + 1
	r.dst.DrawText(x, hy, "SCORE")
	r.dst.DrawText(x, hy+1, fmt.Sprintf("%d", snap.ScoreInt()))
	r.dst.DrawText(x, hy+3, "LINES")
	r.dst.DrawText(x, hy+4, fmt.Sprintf("%d", snap.Lines))
	r.dst.DrawText(x, hy+6, "SPEED")
	r.dst.DrawTextColored(x, hy+7, snap.SpeedBar(speedGlyph), core.ColorGreen)
}

// drawOverlay draws a two-line message box over the middle of the board.
func (r *ScreenRenderer) drawOverlay(boardX, boardY int, line1, line2 string) {
	boxW := boardWidth - 4
	boxH := 5
	box := core.NewRect(boardX+2, boardY+(boardHeight-boxH)/2, boxW, boxH)

	r.dst.DrawRect(box, ' ')
	r.dst.DrawBox(box)
	r.drawCentered(box, box.Y+1, line1)
	r.drawCentered(box, box.Y+3, line2)
}

// drawCentered draws text centered inside a box.
func (r *ScreenRenderer) drawCentered(box core.Rect, y int, text string) {
	x := box.X + (box.W-len(text))/2
	r.dst.DrawTextColored(x, y, text, core.ColorBrightWhite)
}
