package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, floored for display
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventPieceLocked EventType = iota
	EventLinesCleared
	EventSpeedChanged
	EventGameOver
	EventRestarted
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventSpeedChanged:
		return "speed_changed"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Game.Step().
// Value carries the event payload (lines cleared, new speed level, final score).
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
