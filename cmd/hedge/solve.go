package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/hedge/internal/cli"
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze.json>",
	Short: "Solve a previously exported maze",
	Long: `Loads a maze from a JSON export (see 'hedge generate --export') and
prints it with the solution overlaid.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, _, err := loadOptions(cmd)
		if err != nil {
			fail(err)
		}
		if err := cli.ExecuteSolve(args[0], opts); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	mazeFlags(solveCmd)
}
