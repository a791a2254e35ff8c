package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hedge"
	"github.com/aretw0/hedge/internal/cli"
	"github.com/aretw0/hedge/internal/presentation/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive maze workshop",
	Long: `Starts an interactive session: generate mazes, solve them with
different algorithms, compare path lengths, switch themes and export results.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, _, err := loadOptions(cmd)
		if err != nil {
			fail(err)
		}

		tui.PrintBanner(hedge.Version)
		if err := cli.RunInteractive(opts, os.Stdin, os.Stdout); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	mazeFlags(playCmd)
}
