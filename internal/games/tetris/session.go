package tetris

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"  // Speed changes only on request
	ModeMarathon Mode = "marathon" // Speed also rises with cleared lines
)

// Package-level variables for config/difficulty, set by the CLI before the
// registry creates a session.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by new sessions.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by new sessions.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Session hosts a Game on the terminal platform. It is the scheduler (gravity
// every N frames depending on the speed level) and the input adapter
// (platform actions to commands). A single mutex keeps tick and input
// handling run-to-completion.
type Session struct {
	mu sync.Mutex

	mode       Mode
	cfg        config.TetrisConfig
	pinned     bool // cfg was supplied by the caller; skip loading
	configErr  error
	difficulty *config.DifficultyManager

	rng           *rand.Rand
	game          *Game
	tick          uint64
	gravityTicker int
	runtime       core.RuntimeConfig
}

// New creates a classic Tetris session.
func New() *Session {
	return &Session{mode: ModeClassic}
}

// NewMarathon creates a marathon Tetris session.
func NewMarathon() *Session {
	return &Session{mode: ModeMarathon}
}

// WithConfig pins the configuration instead of loading it on Reset.
func (s *Session) WithConfig(cfg config.TetrisConfig) *Session {
	s.cfg = cfg
	s.pinned = true
	return s
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_marathon", func() registry.Game {
		return NewMarathon()
	})
}

// ID returns the game identifier.
func (s *Session) ID() string {
	if s.mode == ModeMarathon {
		return "tetris_marathon"
	}
	return "tetris"
}

// Title returns the display name.
func (s *Session) Title() string {
	if s.mode == ModeMarathon {
		return "Tetris (Marathon)"
	}
	return "Tetris"
}

// ConfigErr returns the error from the last config load, if the session
// fell back to defaults because of it.
func (s *Session) ConfigErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configErr
}

// Reset starts a new game.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(cfg)
}

func (s *Session) reset(cfg core.RuntimeConfig) {
	s.runtime = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.tick = 0
	s.gravityTicker = 0

	if !s.pinned {
		s.loadConfig()
	}
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)

	state := NewGameState()
	state.SetSpeed(s.difficulty.InitialSpeed())
	s.game = NewGame(state, NewShapeFactory(s.rng))
}

// loadConfig resolves the configuration, falling back to defaults on error.
func (s *Session) loadConfig() {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if presetErr := config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(difficultyPreset)); presetErr != nil && err == nil {
		err = presetErr
	}
	s.cfg = cfg
	s.configErr = err
}

// CommandForAction maps a platform action to a game command.
// Actions without a meaning in Tetris map to CommandNone.
func CommandForAction(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CommandMoveLeft
	case core.ActionRight:
		return CommandMoveRight
	case core.ActionRotate:
		return CommandRotate
	case core.ActionDown:
		return CommandSoftDrop
	case core.ActionDrop:
		return CommandHardDrop
	case core.ActionPause:
		return CommandTogglePause
	case core.ActionSpeedUp:
		return CommandSpeedUp
	case core.ActionSpeedDown:
		return CommandSpeedDown
	default:
		return CommandNone
	}
}

// Step applies this frame's input in arrival order, then gravity when the
// frame counter reaches the interval for the current speed.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++
	state := s.game.State()

	if in.Has(core.ActionRestart) && state.GameOver() {
		s.reset(core.RuntimeConfig{
			ScreenW:  s.runtime.ScreenW,
			ScreenH:  s.runtime.ScreenH,
			TickRate: s.runtime.TickRate,
			Seed:     s.rng.Int63(),
		})
		return core.StepResult{
			State:  s.stateLocked(),
			Events: []core.Event{{Type: core.EventRestarted}},
		}
	}

	before := progressOf(state)

	for _, a := range in.Actions() {
		if cmd := CommandForAction(a); cmd != CommandNone {
			s.game.OnInput(cmd)
		}
	}

	if s.game.Status() == StatusRunning {
		s.gravityTicker++
		if s.gravityTicker >= s.cfg.Gravity.IntervalFor(state.Speed()) {
			s.gravityTicker = 0
			s.game.Tick()
		}
	}

	if s.mode == ModeMarathon && s.difficulty.IsEnabled() {
		if target := s.difficulty.SpeedLevel(state.LinesCleared(), int(s.tick)); target > state.Speed() {
			state.SetSpeed(target)
		}
	}

	return core.StepResult{
		State:  s.stateLocked(),
		Events: before.events(progressOf(state)),
	}
}

// progress is the part of the state that produces events when it changes.
type progress struct {
	pieces   int
	lines    int
	speed    int
	gameOver bool
	score    int
}

func progressOf(st *GameState) progress {
	return progress{
		pieces:   st.PiecesFrozen(),
		lines:    st.LinesCleared(),
		speed:    st.Speed(),
		gameOver: st.GameOver(),
		score:    int(st.Score()),
	}
}

// events lists what changed between two progress readings.
func (p progress) events(now progress) []core.Event {
	var out []core.Event
	if n := now.pieces - p.pieces; n > 0 {
		out = append(out, core.Event{Type: core.EventPieceLocked, Value: n})
	}
	if n := now.lines - p.lines; n > 0 {
		out = append(out, core.Event{Type: core.EventLinesCleared, Value: n})
	}
	if now.speed != p.speed {
		out = append(out, core.Event{Type: core.EventSpeedChanged, Value: now.speed})
	}
	if now.gameOver && !p.gameOver {
		out = append(out, core.Event{Type: core.EventGameOver, Value: now.score})
	}
	return out
}

// Render draws the current game state to the screen.
func (s *Session) Render(dst *core.Screen) {
	NewScreenRenderer(dst).Draw(s.Snapshot())
}

// Snapshot returns a read-only copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State().Snapshot()
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() core.GameState {
	snap := s.game.State().Snapshot()
	return core.GameState{
		Score:    snap.ScoreInt(),
		GameOver: snap.GameOver,
		Paused:   snap.Paused,
	}
}
