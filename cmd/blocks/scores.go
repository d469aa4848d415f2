package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	engine "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show finished games",
	Long: `Display the best finished games of a mode, or statistics for
every mode when no mode is given. Needs the sqlite backend.

Examples:
  blocks scores
  blocks scores timed
  blocks scores normal --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var highScoresCmd = &cobra.Command{
	Use:   "highscores",
	Short: "Show the high score of every mode",
	Args:  cobra.NoArgs,
	Run:   runHighScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
}

func runScores(cmd *cobra.Command, args []string) {
	backend, err := openHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	if len(args) == 0 {
		if err := printStats(backend.History); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID, err := resolveGameID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode, _ := blocks.ModeForID(gameID)

	scores, err := backend.History.TopScores(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blocks play %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n",
			i+1, entry.Score, entry.Lines, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := backend.History.BestScore(mode); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}

func printStats(store *storage.Store) error {
	stats, err := store.AllModeStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %-6s  %-5s  %s\n", "Mode", "Games", "Best", "Average", "Lines", "Level", "Last played")
	for _, k := range keys {
		st := stats[k]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.0f  %-6d  %-5d  %s\n",
			st.Mode, st.GamesCount, st.BestScore, st.AvgScore, st.TotalLines, st.MaxLevel,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func runHighScores(_ *cobra.Command, _ []string) {
	backend := openBackend()
	defer backend.Close()

	highs, err := backend.HighScores.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading high scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High scores (%s backend)\n", backend.Kind)
	fmt.Println()
	for _, m := range engine.Modes() {
		fmt.Printf("  %-10s  %d\n", m, highs[m])
	}
}
