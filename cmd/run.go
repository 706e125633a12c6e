package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	_ "guardhooks/internal/handlers"
	"guardhooks/internal/hooks"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the guard hooks (called by Claude Code)",
	Long: `Read one hook event as JSON from stdin, run every matching guard, and exit.

Exit status 0 allows the operation (warnings may still be printed); status 2
blocks it. Claude Code invokes this command automatically once installed; you
can also pipe JSON to it directly for testing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		code := hooks.RunExitCode(ctx)
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
