package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the leaderboard for a variant",
	Long: `Display the top runs and aggregate stats for the given variant.

Examples:
  tilemerge scores
  tilemerge scores mini --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	variant, err := resolveVariant(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(variant.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", variant.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilemerge play %s' to set the first high score!\n", variant.ID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Max", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "---", "-----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-12s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(variant.ID)
	if err != nil {
		logger.Warn("could not load stats", "variant", variant.ID, "error", err)
		return
	}

	fmt.Println()
	fmt.Printf("Best: %d  Best tile: %d  Games: %d  Average: %.0f  Total moves: %d\n",
		stats.HighScore, stats.BestTile, stats.GamesCount, stats.AvgScore, stats.TotalMoves)
}
