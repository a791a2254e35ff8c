package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/hedge"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hedge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hedge version %s\n", strings.TrimSpace(hedge.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
