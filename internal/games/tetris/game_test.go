package tetris

import "testing"

func fallingLine(g *Game) int {
	return g.State().FallingShape().AbsoluteCells(0, 0)[0].Line
}

func TestNewGameDrawsFallingAndNext(t *testing.T) {
	g := newTestGame(bar(0, 5))
	st := g.State()

	if st.FallingShape() == nil || st.NextShape() == nil {
		t.Fatal("NewGame should draw falling and next shapes")
	}
	if st.FallingShape() == st.NextShape() {
		t.Error("falling and next should be separate shapes")
	}
	if g.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", g.Status())
	}
}

func TestGravityDescentAndFreeze(t *testing.T) {
	g := newTestGame(bar(0, 5))
	st := g.State()
	next := st.NextShape()

	// The bar starts on line 0 and can fall 19 rows.
	for i := 1; i <= 19; i++ {
		r := g.Tick()
		if !r.Moved {
			t.Fatalf("tick %d: expected a downward move", i)
		}
		if line := fallingLine(g); line != i {
			t.Fatalf("tick %d: falling line = %d, expected %d", i, line, i)
		}
	}

	// Grace tick: rejected, forgiven, nothing changes.
	r := g.Tick()
	if r.Moved || r.Frozen {
		t.Fatalf("grace tick should neither move nor freeze, got %+v", r)
	}
	if fallingLine(g) != 19 {
		t.Error("shape should stay on line 19 during the grace tick")
	}

	r = g.Tick()
	if !r.Frozen || r.GameOver {
		t.Fatalf("tick 21 should freeze without game over, got %+v", r)
	}
	for column := 4; column <= 6; column++ {
		if st.CellAt(19, column).Color != "blue" {
			t.Errorf("cell (19, %d) should be occupied", column)
		}
	}
	if st.FallingShape() != next {
		t.Error("the previous next shape should now be falling")
	}
	if st.NextShape() == nil || st.NextShape() == next {
		t.Error("a fresh next shape should be drawn")
	}
	if st.PiecesFrozen() != 1 {
		t.Errorf("PiecesFrozen() = %d, expected 1", st.PiecesFrozen())
	}
}

func TestForgivenessRestoredByDownwardMove(t *testing.T) {
	g := newTestGame(dot(0, 5))
	st := g.State()
	st.SetCell(NewCell(10, 5, "gray"))
	st.SetFallingShape(dot(9, 5))

	if r := g.Tick(); r.Moved || r.Frozen {
		t.Fatalf("first rejection should be forgiven, got %+v", r)
	}

	// Sliding off the obstacle lets the shape fall again, which restores
	// the grace tick for the next landing.
	if !g.OnInput(CommandMoveRight) {
		t.Fatal("move right should be accepted")
	}
	if r := g.Tick(); !r.Moved {
		t.Fatalf("shape should fall after sliding off, got %+v", r)
	}

	st.SetCell(NewCell(11, 6, "gray"))
	if r := g.Tick(); r.Moved || r.Frozen {
		t.Fatalf("landing again should be forgiven once, got %+v", r)
	}
	if r := g.Tick(); !r.Frozen {
		t.Fatalf("second rejection should freeze, got %+v", r)
	}
	if st.CellAt(10, 6).Color != "red" {
		t.Error("dot should be frozen at (10, 6)")
	}
}

func TestHorizontalMovesBlockedAtWalls(t *testing.T) {
	tests := []struct {
		name   string
		column float64
		cmd    Command
	}{
		{"left wall", 1, CommandMoveLeft},
		{"right wall", Columns - 2, CommandMoveRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(bar(0, 5))
			shape := bar(10, tc.column)
			g.State().SetFallingShape(shape)

			if g.OnInput(tc.cmd) {
				t.Errorf("%v should be rejected at the wall", tc.cmd)
			}
			if shape.CenterColumn != tc.column || shape.CenterLine != 10 {
				t.Errorf("shape moved to (%v, %v), expected (10, %v)", shape.CenterLine, shape.CenterColumn, tc.column)
			}
		})
	}
}

func TestHorizontalMoves(t *testing.T) {
	g := newTestGame(bar(0, 5))
	shape := g.State().FallingShape()

	if !g.OnInput(CommandMoveLeft) || shape.CenterColumn != 4 {
		t.Errorf("move left: column = %v, expected 4", shape.CenterColumn)
	}
	if !g.OnInput(CommandMoveRight) || shape.CenterColumn != 5 {
		t.Errorf("move right: column = %v, expected 5", shape.CenterColumn)
	}
}

func TestRotateBlockedAtFloorRestoresExactly(t *testing.T) {
	g := newTestGame(bar(0, 5))
	factory := NewShapeFactory(&seqSource{})
	i := factory.CreateRandomShape() // index 0 is the I piece
	i.Move(19, 0)
	g.State().SetFallingShape(i)

	before := i.AbsoluteCells(0, 0)
	relBefore := i.RelativeCells()
	if !g.State().IsValid() {
		t.Fatal("I piece on the floor should be valid")
	}

	if g.OnInput(CommandRotate) {
		t.Fatal("rotation through the floor should be rejected")
	}

	after := i.AbsoluteCells(0, 0)
	for k := range before {
		if before[k] != after[k] {
			t.Errorf("cell %d = %+v, expected %+v", k, after[k], before[k])
		}
	}
	relAfter := i.RelativeCells()
	for k := range relBefore {
		if relBefore[k] != relAfter[k] {
			t.Errorf("offset %d = %+v, expected %+v", k, relAfter[k], relBefore[k])
		}
	}
}

func TestRotateAccepted(t *testing.T) {
	g := newTestGame(bar(10, 5))
	shape := g.State().FallingShape()

	if !g.OnInput(CommandRotate) {
		t.Fatal("rotation in open space should be accepted")
	}
	cells := shape.AbsoluteCells(0, 0)
	for _, c := range cells {
		if c.Column != 5 {
			t.Errorf("rotated bar should be vertical on column 5, got %+v", c)
		}
	}
}

func TestSoftDrop(t *testing.T) {
	g := newTestGame(bar(0, 5))

	if !g.OnInput(CommandSoftDrop) {
		t.Fatal("soft drop should be accepted")
	}
	if fallingLine(g) != 1 {
		t.Errorf("falling line = %d, expected 1", fallingLine(g))
	}
}

func TestHardDrop(t *testing.T) {
	g := newTestGame(bar(0, 5))
	st := g.State()

	r := g.HardDrop()
	if !r.Moved || !r.Frozen {
		t.Fatalf("HardDrop() = %+v, expected moved and frozen", r)
	}
	for column := 4; column <= 6; column++ {
		if st.CellAt(19, column).IsEmpty() {
			t.Errorf("cell (19, %d) should be occupied", column)
		}
	}
	if fallingLine(g) != 0 {
		t.Error("a new shape should spawn at the top")
	}
}

func TestHardDropClearsLines(t *testing.T) {
	g := newTestGame(bar(0, 5))
	st := g.State()
	for column := range Columns {
		if column < 4 || column > 6 {
			st.SetCell(NewCell(19, column, "gray"))
		}
	}

	r := g.HardDrop()
	if r.LinesCleared != 1 {
		t.Fatalf("LinesCleared = %d, expected 1", r.LinesCleared)
	}
	if st.Score() != 110 {
		t.Errorf("Score() = %v, expected 110", st.Score())
	}
	for column := range Columns {
		if !st.CellAt(19, column).IsEmpty() {
			t.Errorf("cell (19, %d) should be empty after the clear", column)
		}
	}
}

func TestGameOverAtHeadroom(t *testing.T) {
	g := newTestGame(bar(0, 5))
	st := g.State()
	for line := 2; line < Lines; line++ {
		st.SetCell(NewCell(line, 5, "gray"))
	}

	// Line 1 is free, the shape falls once then locks inside the headroom.
	g.Tick()
	g.Tick()
	r := g.Tick()
	if !r.GameOver {
		t.Fatalf("expected game over, got %+v", r)
	}
	if g.Status() != StatusGameOver {
		t.Errorf("Status() = %v, expected game_over", g.Status())
	}
	if st.FallingShape() != nil {
		t.Error("no shape should fall after game over")
	}

	if r := g.Tick(); r != (TickResult{}) {
		t.Errorf("Tick() after game over = %+v, expected no-op", r)
	}
	for _, cmd := range []Command{CommandMoveLeft, CommandMoveRight, CommandRotate, CommandSoftDrop, CommandHardDrop} {
		if g.OnInput(cmd) {
			t.Errorf("%v should be ignored after game over", cmd)
		}
	}
	if !g.OnInput(CommandTogglePause) {
		t.Error("pause toggle should be accepted after game over")
	}
	if !st.GameOver() {
		t.Error("game over must not be cleared")
	}
}

func TestPauseGatesMovement(t *testing.T) {
	g := newTestGame(bar(0, 5))
	shape := g.State().FallingShape()

	if !g.OnInput(CommandTogglePause) {
		t.Fatal("pause should be accepted")
	}
	if g.Status() != StatusPaused {
		t.Errorf("Status() = %v, expected paused", g.Status())
	}

	for _, cmd := range []Command{CommandMoveLeft, CommandMoveRight, CommandRotate, CommandSoftDrop, CommandHardDrop} {
		if g.OnInput(cmd) {
			t.Errorf("%v should be ignored while paused", cmd)
		}
	}
	if r := g.Tick(); r != (TickResult{}) {
		t.Errorf("Tick() while paused = %+v, expected no-op", r)
	}
	if shape.CenterLine != 0 || shape.CenterColumn != 5 {
		t.Errorf("shape moved while paused to (%v, %v)", shape.CenterLine, shape.CenterColumn)
	}

	if !g.OnInput(CommandSpeedUp) {
		t.Error("speed up should be accepted while paused")
	}

	g.OnInput(CommandTogglePause)
	if g.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", g.Status())
	}
}

func TestSpeedCommandsClamp(t *testing.T) {
	g := newTestGame(bar(0, 5))
	st := g.State()

	if g.OnInput(CommandSpeedDown) {
		t.Error("speed down at the minimum should report no change")
	}
	for range MaxSpeed + 2 {
		g.OnInput(CommandSpeedUp)
	}
	if st.Speed() != MaxSpeed {
		t.Errorf("Speed() = %d, expected %d", st.Speed(), MaxSpeed)
	}
	if g.OnInput(CommandSpeedUp) {
		t.Error("speed up at the maximum should report no change")
	}
	if !g.OnInput(CommandSpeedDown) || st.Speed() != MaxSpeed-1 {
		t.Errorf("Speed() = %d, expected %d", st.Speed(), MaxSpeed-1)
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	g := newTestGame(bar(0, 5))
	if g.OnInput(CommandNone) || g.OnInput(Command(99)) {
		t.Error("unknown commands should be ignored")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{CommandMoveLeft, "move-left"},
		{CommandHardDrop, "hard-drop"},
		{CommandTogglePause, "pause-toggle"},
		{Command(99), "none"},
	}
	for _, tc := range tests {
		if got := tc.cmd.String(); got != tc.expected {
			t.Errorf("Command(%d).String() = %q, expected %q", tc.cmd, got, tc.expected)
		}
	}
}
