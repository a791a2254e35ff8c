package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/hedge/internal/cli"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Carve a maze and print it",
	Long: `Carves a perfect maze and prints it to stdout. With --solve the
shortest path is drawn over the maze; with --export NAME the maze is also
written as NAME.txt and NAME.json.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, _, err := loadOptions(cmd)
		if err != nil {
			fail(err)
		}

		solve, _ := cmd.Flags().GetBool("solve")
		exportName, _ := cmd.Flags().GetString("export")

		if err := cli.ExecuteGenerate(opts, solve, exportName); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	mazeFlags(generateCmd)
	generateCmd.Flags().BoolP("solve", "s", false, "Overlay the solution")
	generateCmd.Flags().StringP("export", "e", "", "Export the maze under this name")
}
