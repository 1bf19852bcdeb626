package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the shape catalog",
	Long:  `Draws every shape in spawn orientation with its color and pivot.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCatalog(tetris.Classic(), palette()))
	},
}
