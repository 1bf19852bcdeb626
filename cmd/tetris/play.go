package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const defaultMode = "tetris"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing Tetris. The mode defaults to "tetris"; "tetris_marathon"
raises the speed as lines are cleared.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  +/-              - Change speed
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at speed 1, progresses to max (marathon)
  normal - Start at speed 2, progresses to max
  hard   - Start at speed 4, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  tetris play
  tetris play tetris_marathon --difficulty hard
  tetris play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'tetris list' to see available modes)", gameID)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = playGame(gameID, preset, runtimeConfig(), tui.Options{Logger: logger, Palette: palette()})
	return err
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// playGame creates a session for gameID and runs it to completion.
func playGame(gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig, opts tui.Options) (core.GameState, error) {
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(string(preset))

	game, err := registry.Create(gameID)
	if err != nil {
		return core.GameState{}, fmt.Errorf("create game: %w", err)
	}

	if s, ok := game.(*tetris.Session); ok {
		// Reset early so config problems reach the log before the screen switches.
		s.Reset(cfg)
		if cfgErr := s.ConfigErr(); cfgErr != nil {
			opts.Logger.Warn("using default config", "error", cfgErr)
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", cfgErr)
		}
	}

	opts.Logger.Info("starting", "mode", gameID, "difficulty", string(preset))
	state, err := tui.Run(game, cfg, opts)
	if err != nil {
		return state, fmt.Errorf("run game: %w", err)
	}
	opts.Logger.Info("finished", "mode", gameID, "score", state.Score, "game_over", state.GameOver)
	return state, nil
}
