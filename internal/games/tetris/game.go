package tetris

// Command is a discrete player request handled by Game.OnInput.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandSoftDrop
	CommandHardDrop
	CommandTogglePause
	CommandSpeedUp
	CommandSpeedDown
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "move-left"
	case CommandMoveRight:
		return "move-right"
	case CommandRotate:
		return "rotate"
	case CommandSoftDrop:
		return "soft-drop"
	case CommandHardDrop:
		return "hard-drop"
	case CommandTogglePause:
		return "pause-toggle"
	case CommandSpeedUp:
		return "speed-up"
	case CommandSpeedDown:
		return "speed-down"
	default:
		return "none"
	}
}

// Status is the controller's state machine position.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "running"
	}
}

// TickResult describes what a gravity step did.
type TickResult struct {
	Moved        bool // The shape descended one row
	Frozen       bool // The shape was committed to the board
	LinesCleared int
	GameOver     bool // The freeze ended the game
}

// Game drives a session: it applies gravity and player commands to a
// GameState using shapes from a ShapeFactory. It is not safe for concurrent
// use; callers serialize Tick and OnInput.
type Game struct {
	state   *GameState
	factory *ShapeFactory

	// forgiveness is spent by the first rejected downward move and restored
	// by a successful one or a new shape.
	forgiveness bool
}

// NewGame creates a controller over state (a fresh state when nil) and
// draws the initial falling and next shapes.
func NewGame(state *GameState, factory *ShapeFactory) *Game {
	if state == nil {
		state = NewGameState()
	}
	g := &Game{
		state:       state,
		factory:     factory,
		forgiveness: true,
	}
	state.SetFallingShape(factory.CreateRandomShape())
	state.SetNextShape(factory.CreateRandomShape())
	return g
}

// State returns the underlying game state.
func (g *Game) State() *GameState {
	return g.state
}

// Status returns Running, Paused or GameOver.
func (g *Game) Status() Status {
	switch {
	case g.state.GameOver():
		return StatusGameOver
	case g.state.Paused():
		return StatusPaused
	default:
		return StatusRunning
	}
}

// playable reports whether movement commands and gravity apply.
func (g *Game) playable() bool {
	return !g.state.Paused() && !g.state.GameOver() && g.state.FallingShape() != nil
}

// Tick is one gravity step. The shape moves down if it can; the first
// rejection is forgiven, the second in a row freezes the shape.
func (g *Game) Tick() TickResult {
	if !g.playable() {
		return TickResult{}
	}

	if g.tryMove(1, 0) {
		g.forgiveness = true
		return TickResult{Moved: true}
	}

	if g.forgiveness {
		g.forgiveness = false
		return TickResult{}
	}

	return g.lock()
}

// lock freezes the falling shape, clears lines and spawns the next pair.
func (g *Game) lock() TickResult {
	g.state.FreezeShape()
	result := TickResult{
		Frozen:       true,
		LinesCleared: g.state.CompleteLines(),
		GameOver:     g.state.GameOver(),
	}
	if !result.GameOver {
		g.state.SetNextShape(g.factory.CreateRandomShape())
	}
	g.forgiveness = true
	return result
}

// HardDrop moves the shape down until it collides and freezes it at once.
func (g *Game) HardDrop() TickResult {
	if !g.playable() {
		return TickResult{}
	}
	moved := false
	for g.tryMove(1, 0) {
		moved = true
	}
	result := g.lock()
	result.Moved = moved
	return result
}

// tryMove applies a speculative move and rolls it back if the result is invalid.
func (g *Game) tryMove(dLine, dColumn float64) bool {
	shape := g.state.FallingShape()
	shape.Move(dLine, dColumn)
	if g.state.IsValid() {
		return true
	}
	shape.Move(-dLine, -dColumn)
	return false
}

// tryRotate rotates the shape and undoes the rotation if the result is invalid.
func (g *Game) tryRotate() bool {
	shape := g.state.FallingShape()
	shape.Rotate()
	if g.state.IsValid() {
		return true
	}
	shape.UndoRotate()
	return false
}

// OnInput applies a player command and reports whether it changed anything.
// Pause and speed changes are always accepted; movement, rotation and drops
// are ignored while paused or after game over. Unknown commands are ignored.
func (g *Game) OnInput(cmd Command) bool {
	switch cmd {
	case CommandTogglePause:
		g.state.TogglePause()
		return true
	case CommandSpeedUp:
		before := g.state.Speed()
		g.state.SetSpeed(before + 1)
		return g.state.Speed() != before
	case CommandSpeedDown:
		before := g.state.Speed()
		g.state.SetSpeed(before - 1)
		return g.state.Speed() != before
	}

	if !g.playable() {
		return false
	}

	switch cmd {
	case CommandMoveLeft:
		return g.tryMove(0, -1)
	case CommandMoveRight:
		return g.tryMove(0, 1)
	case CommandRotate:
		return g.tryRotate()
	case CommandSoftDrop:
		r := g.Tick()
		return r.Moved || r.Frozen
	case CommandHardDrop:
		return g.HardDrop().Frozen
	}
	return false
}
