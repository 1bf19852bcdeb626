package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start Tetris in interactive menu mode.

Use Up/Down to pick a mode, Left/Right to change difficulty and Enter to play.
After a game ends you return to the menu.

Examples:
  tetris menu
  tetris menu --fps 30 --log-file tetris.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	opts := tui.Options{Logger: logger, Palette: palette()}

	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}
		preset = result.Difficulty

		// Fresh seed per game unless the user pinned one
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if _, err := playGame(result.GameID, preset, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
