// relativity is a terminal gravity-slingshot puzzle: fling a craft past
// stars and planets to a destination while special and general relativity
// slow its clock.
//
// Usage:
//
//	relativity menu              - Pick a level interactively
//	relativity play [level]      - Play a level (default: the first)
//	relativity levels            - List available levels
//	relativity simulate <level>  - Fly a level headless with a fixed launch
//	relativity grid <level>      - Print the warped field lattice of a level
//	relativity scores [level]    - Show best runs
//	relativity serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible camera shake
//	--db <path>            - Set database path (default: ~/.relativity/runs.db)
//	--config <path>        - Physics config YAML
//	--levels <dir>         - Extra level files
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relativity",
	Short: "Relativity - a gravity puzzle where your clock runs slow",
	Long: `Relativity is a terminal puzzle about reaching a far destination
through a field of stars and planets. Every run keeps two clocks: the
craft's own proper time and the time seen by a distant observer. Speed and
deep gravity wells slow the craft's clock; the best runs are the shortest
on it.

Available commands:
  menu      - Interactive level picker
  play      - Play a level directly
  levels    - List all levels
  simulate  - Fly a level headless with a fixed launch
  grid      - Print the warped field lattice
  scores    - View best runs
  serve     - Start SSH server for remote play

Examples:
  relativity menu
  relativity play 02 --difficulty easy
  relativity simulate 01 --angle 45 --power 0.8
  relativity serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.relativity/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
