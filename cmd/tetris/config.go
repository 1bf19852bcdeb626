package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would use, after the search order
(--config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml, built-in
defaults) and the --difficulty preset are applied.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --defaults > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}
	out := cmd.OutOrStdout()

	if flagDefaults {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			return fmt.Errorf("no defaults for mode %q", gameID)
		}
		_, err := out.Write(data)
		return err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
