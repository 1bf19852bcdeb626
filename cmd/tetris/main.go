// tetris plays Tetris in the terminal.
//
// Usage:
//
//	tetris                   - Pick a mode and difficulty interactively
//	tetris play [mode]       - Play directly (tetris or tetris_marathon)
//	tetris list              - List available modes
//	tetris shapes            - Show the shape catalog
//	tetris config [mode]     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--no-color          - Render without colors
//	--config <path>     - Use a custom config YAML
//	--difficulty <name> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Tetris is the classic falling-blocks game for the terminal.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker (default)
  list     - Show all available modes
  shapes   - Show the shape catalog
  config   - Print the effective configuration

Examples:
  tetris
  tetris play
  tetris play tetris_marathon --difficulty hard
  tetris config > ~/.tetris/configs/tetris.yaml`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Render without colors")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. The terminal belongs to the game,
// so output goes to --log-file or nowhere.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn, nil
}

// palette returns the screen palette selected by --no-color.
func palette() tui.Palette {
	if flagNoColor {
		return tui.MonoPalette
	}
	return tui.ColorPalette
}
