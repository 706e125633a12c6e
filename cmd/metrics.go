package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"guardhooks/internal/metrics"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Inspect recorded session metrics",
	Long:  `Commands for viewing the session metrics log (.claude/agent-metrics.jsonl).`,
}

var metricsListCmd = &cobra.Command{
	Use:   "list [count]",
	Short: "List recent session metrics entries",
	Long:  `Prints recent metrics entries, newest last. Defaults to the last 20.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := 20
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid count: %s", args[0])
			}
			limit = n
		}

		entries, err := metrics.ReadAll(".")
		if err != nil {
			return fmt.Errorf("failed to read metrics: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No session metrics recorded yet.")
			return nil
		}

		if len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}
		for _, e := range entries {
			commit := e.Commit
			if commit == "" {
				commit = "(no commit)"
			}
			fmt.Printf("%s  %3d files changed  %s\n",
				e.Timestamp.Format("2006-01-02 15:04:05"), e.FilesChanged, commit)
		}
		return nil
	},
}

var metricsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize recorded session metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := metrics.ReadAll(".")
		if err != nil {
			return fmt.Errorf("failed to read metrics: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No session metrics recorded yet.")
			return nil
		}

		totalChanged := 0
		withCommit := 0
		for _, e := range entries {
			totalChanged += e.FilesChanged
			if e.Commit != "" {
				withCommit++
			}
		}

		first := entries[0].Timestamp
		last := entries[len(entries)-1].Timestamp
		fmt.Printf("Sessions recorded: %d (%s to %s)\n",
			len(entries), first.Format("2006-01-02"), last.Format("2006-01-02"))
		fmt.Printf("Files changed:     %d total, %.1f per session\n",
			totalChanged, float64(totalChanged)/float64(len(entries)))
		fmt.Printf("Ended at a commit: %d of %d sessions\n", withCommit, len(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.AddCommand(metricsListCmd)
	metricsCmd.AddCommand(metricsSummaryCmd)
}
