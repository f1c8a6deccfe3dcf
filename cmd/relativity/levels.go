package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels merged with any found in --levels,
and reports level files that were skipped.`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	env, err := loadEnv(newLogger(false), false)
	if err != nil {
		return err
	}
	catalog := env.Catalog

	if len(catalog.Levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range catalog.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-4s  %-*s  %6s  %8s\n", "ID", maxNameLen, "Name", "Bodies", "Orbiters")
	fmt.Printf("  %-4s  %-*s  %6s  %8s\n", "--", maxNameLen, "----", "------", "--------")

	for _, l := range catalog.Levels {
		fmt.Printf("  %-4s  %-*s  %6d  %8d\n", l.ID, maxNameLen, l.Name, len(l.Bodies), len(l.Orbiters()))
	}

	if len(catalog.Problems) > 0 {
		fmt.Println()
		fmt.Printf("Skipped %d level file(s):\n", len(catalog.Problems))
		for _, p := range catalog.Problems {
			fmt.Printf("  %v\n", p)
		}
	}

	fmt.Println()
	fmt.Println("Run 'relativity play <id>' to play a level.")
	return nil
}
