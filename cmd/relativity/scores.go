package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-relativity/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Display the runs with the shortest craft clock for a level, or a
summary of every level when none is given.

Examples:
  relativity scores
  relativity scores 01
  relativity scores --recent
  relativity scores 02 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs across all levels")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the level")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if len(args) == 0 {
			return errors.New("--clear needs a level")
		}
		if err := store.ClearRuns(args[0]); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for level %s.\n", args[0])
		return nil

	case flagScoresRecent:
		runs, err := store.RecentRuns(flagScoresLimit)
		if err != nil {
			return err
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return nil

	case len(args) == 1:
		return showLevel(store, args[0])
	}

	return showSummary(store)
}

func showLevel(store *storage.Store, levelID string) error {
	title := levelID
	if env, err := loadEnv(newLogger(false), false); err == nil {
		if lvl, err := env.Catalog.ByID(levelID); err == nil {
			title = lvl.ID + " " + lvl.Name
		}
	}

	runs, err := store.BestRuns(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'relativity play %s' to set the first time!\n", levelID)
		return nil
	}
	printRuns(runs, false)

	if stats, err := store.GetLevelStats(levelID); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs, average craft clock %.2f d, fastest launch %.2fc\n",
			stats.Runs, stats.AvgProper, stats.FastestLaunch)
	}
	return nil
}

func showSummary(store *storage.Store) error {
	all, err := store.GetAllLevelStats()
	if err != nil {
		return err
	}

	env, err := loadEnv(newLogger(false), false)
	if err != nil {
		return err
	}

	fmt.Println("Best runs by level")
	fmt.Println()
	fmt.Printf("  %-4s  %-20s  %5s  %10s  %10s  %s\n", "ID", "Name", "Runs", "Best", "Avg world", "Last played")
	fmt.Printf("  %-4s  %-20s  %5s  %10s  %10s  %s\n", "--", "----", "----", "----", "---------", "-----------")

	for _, lvl := range env.Catalog.Levels {
		stats, ok := all[lvl.ID]
		if !ok {
			fmt.Printf("  %-4s  %-20s  %5d  %10s  %10s  %s\n", lvl.ID, lvl.Name, 0, "--", "--", "--")
			continue
		}
		fmt.Printf("  %-4s  %-20s  %5d  %8.2f d  %8.2f d  %s\n",
			lvl.ID, lvl.Name, stats.Runs, stats.BestProper, stats.AvgObserver,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRuns(runs []storage.Run, withLevel bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-5s  %10s  %10s  %7s  %5s  %-7s  %-10s  %s\n",
		"Rank", "Level", "Craft", "World", "Launch", "Rate", "Mode", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %10s  %10s  %7s  %5s  %-7s  %-10s  %s\n",
		"----", "-----", "-----", "-----", "------", "----", "----", "------", "----")

	for i, r := range runs {
		level := r.LevelID
		if !withLevel {
			level = ""
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-5s  %8.2f d  %8.2f d  %6.2fc  %4.2gx  %-7s  %-10s  %s\n",
			i+1, level, r.ProperDays, r.ObserverDays, r.LaunchFraction, r.Rate,
			r.Difficulty, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
