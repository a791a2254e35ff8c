package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hedge/internal/cli"
	"github.com/aretw0/hedge/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "hedge",
	Short: "Hedge is a maze generation and pathfinding workshop",
	Long: `Hedge carves perfect mazes and solves them with interchangeable
algorithms (bfs, astar, dijkstra, deadend), in the terminal or over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to hedge.yaml (default: ./hedge.yaml if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadOptions merges the config file with the flags of cmd. A flag only
// overrides the file when the user actually set it.
func loadOptions(cmd *cobra.Command) (cli.RunOptions, config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return cli.RunOptions{}, cfg, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	opts := cli.RunOptions{
		Width:     cfg.Generate.Width,
		Height:    cfg.Generate.Height,
		Generator: cfg.Generate.Algorithm,
		Seed:      cfg.Generate.Seed,
		Solver:    cfg.Solve.Algorithm,
		Theme:     cfg.Display.Theme,
		Unicode:   cfg.Display.Unicode,
		ExportDir: cfg.Export.Directory,
		Debug:     debug,
	}

	overrideInt(cmd, "width", &opts.Width)
	overrideInt(cmd, "height", &opts.Height)
	overrideInt64(cmd, "seed", &opts.Seed)
	overrideString(cmd, "generator", &opts.Generator)
	overrideString(cmd, "algorithm", &opts.Solver)
	overrideString(cmd, "theme", &opts.Theme)
	overrideString(cmd, "export-dir", &opts.ExportDir)
	overrideBool(cmd, "unicode", &opts.Unicode)

	return opts, cfg, nil
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

func overrideInt64(cmd *cobra.Command, name string, dst *int64) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt64(name)
	}
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetBool(name)
	}
}

// mazeFlags registers the flags shared by generate, solve and play.
func mazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("width", "W", 0, "Maze width (odd, >= 5)")
	cmd.Flags().IntP("height", "H", 0, "Maze height (odd, >= 5)")
	cmd.Flags().Int64("seed", 0, "Seed for deterministic carving (0 = random)")
	cmd.Flags().StringP("generator", "g", "", "Carving variant: iterative or recursive")
	cmd.Flags().StringP("algorithm", "a", "", "Solver: bfs, astar, dijkstra or deadend")
	cmd.Flags().StringP("theme", "t", "", "Color theme: classic, dark or neon")
	cmd.Flags().Bool("unicode", false, "Draw with unicode glyphs")
	cmd.Flags().String("export-dir", "", "Directory for exported mazes")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
