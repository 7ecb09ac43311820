package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsLimit int
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime game statistics",
	Long: `Shows aggregate statistics over all recorded games and the most
recent game results.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 10, "number of recent games to list")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	ctx := context.Background()

	summary, err := statsService.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	history, err := statsService.History(ctx, statsLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if statsJSON {
		payload := struct {
			Summary any `json:"summary"`
			History any `json:"history"`
		}{Summary: summary, History: history}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if summary.GamesPlayed == 0 {
		cmd.Println("No games played yet. Run 'mapguess play' to start.")
		return nil
	}

	cmd.Println("Statistics")
	cmd.Println("==========")
	cmd.Println()
	cmd.Printf("  Games played:  %d\n", summary.GamesPlayed)
	cmd.Printf("  Rounds played: %d\n", summary.TotalRounds)
	cmd.Printf("  Correct:       %d\n", summary.TotalCorrect)
	cmd.Printf("  Accuracy:      %.1f%%\n", summary.Accuracy()*100)
	cmd.Printf("  Best game:     %d correct\n", summary.BestCorrect)
	if !summary.LastPlayed.IsZero() {
		cmd.Printf("  Last played:   %s\n", summary.LastPlayed.Format("2006-01-02 15:04"))
	}

	if len(history) > 0 {
		cmd.Println()
		cmd.Println("Recent games:")
		for _, rec := range history {
			cmd.Printf("  %s  %-13s %-8s  correct %-3d wrong %-3d skipped %-3d\n",
				rec.FinishedAt.Format("2006-01-02"),
				rec.Region, rec.Difficulty,
				rec.Correct, rec.Wrong, rec.Skipped)
		}
	}

	return nil
}
