package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-tutorial/internal/platform/tui"
	"github.com/vovakirdan/sprite-tutorial/internal/storage"
)

var (
	flagBrowse bool
	flagRecent bool
	flagLimit  int
	flagPlayer string
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best (or most recent) recorded runs.

Examples:
  tutorial scores
  tutorial scores --recent --limit 20
  tutorial scores --player ana
  tutorial scores --run 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  tutorial scores --browse
  tutorial scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history interactively")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of high score")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	case flagRunID != "":
		return printRun(store, flagRunID)
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.Run
	title := "Top Runs"
	switch {
	case flagPlayer != "":
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
		title = "Recent Runs - " + flagPlayer
	case flagRecent:
		runs, err = store.RecentRuns(flagLimit)
		title = "Recent Runs"
	default:
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tutorial play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-5s  %-7s  %-8s  %s\n", "Rank", "Player", "High", "Final", "Cars", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-5s  %-7s  %-8s  %s\n", "----", "------", "----", "-----", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-5d  %-5d  %-7s  %-8s  %s\n",
			i+1, r.Player, r.HighScore, r.Score,
			fmt.Sprintf("%d/%d", r.TargetsCollected, r.TargetsSpawned),
			(time.Duration(r.Duration) * time.Second).String(),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestHighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// printRun shows every recorded field of one run.
func printRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("error retrieving run: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no run with ID %s", runID)
	}

	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Player:     %s (%s)\n", r.Player, r.Host)
	fmt.Printf("  Played:     %s for %s\n", r.CreatedAt.Format("2006-01-02 15:04"), time.Duration(r.Duration)*time.Second)
	fmt.Printf("  Score:      %d (high %d)\n", r.Score, r.HighScore)
	fmt.Printf("  Cars:       %d collected of %d spawned\n", r.TargetsCollected, r.TargetsSpawned)
	fmt.Printf("  Resets:     %d\n", r.Resets)
	return nil
}
