package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores for the selected difficulty.

Examples:
  breakout scores
  breakout scores --difficulty hard
  breakout scores --all
  breakout scores --tui
  breakout scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show statistics for every difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the selected difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	key := config.ScoreKey(preset)

	switch {
	case flagScoresTUI:
		width, height := terminalSize()
		return tui.RunScoreboard(store, width, height)

	case flagScoresClear:
		if err := store.ClearScores(ctx, key); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", preset.Title())
		return nil

	case flagScoresAll:
		return printStats(cmd, store)
	}

	scores, err := store.TopScores(ctx, key, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", preset.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'breakout play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
	return nil
}

func printStats(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scores database: %s (%s)\n\n", flagDBPath, store.Backend())
	fmt.Fprintf(out, "  %-8s  %-7s  %-5s  %-7s  %s\n", "Board", "Records", "Best", "Average", "Last")

	for _, p := range config.Presets() {
		st, err := store.Stats(cmd.Context(), config.ScoreKey(p))
		if err != nil {
			return err
		}
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-8s  %-7d  %-5d  %-7.1f  %s\n", p.Title(), st.Records, st.HighScore, st.AvgScore, last)
	}
	return nil
}
