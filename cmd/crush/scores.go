package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores",
	Long: `Display the top scores and longest chains for a mode.

Examples:
  crush scores
  crush scores endless --limit 25
  crush scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored score for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "crush"
	if len(args) == 1 {
		switch args[0] {
		case "campaign", "crush":
		case "endless", "crush_endless":
			gameID = "crush_endless"
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d %s scores.\n", n, registry.TitleOf(gameID))
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", registry.TitleOf(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "Rank", "Score", "Chain", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  x%-4d  %-7s  %s\n", i+1, entry.Score, entry.Chain,
			levelLabel(entry.Level, entry.Won), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("stats unavailable", "err", err)
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Longest chain: x%d  Average: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.BestChain, stats.AvgScore)
	if gameID == "crush" {
		fmt.Printf("Furthest level: %d  Campaigns won: %d\n", stats.BestLevel, stats.Wins)
	}
}

// levelLabel formats the level column; endless games have none.
func levelLabel(level int, won bool) string {
	switch {
	case level == 0:
		return "-"
	case won:
		return fmt.Sprintf("%d won", level)
	}
	return strconv.Itoa(level)
}
