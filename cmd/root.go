package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	rootCmd = &cobra.Command{
		Use:   "guardhooks",
		Short: "Guard hooks for Claude Code edits and sessions",
		Long: `A Go binary that runs as a Claude Code hook handler and guards tool usage.

It blocks edits that would introduce secrets or touch protected files, warns
about debug leftovers and oversized content, type-checks TypeScript edits,
and records session metrics. Each guard is an independent, fail-open check.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				opts := &slog.HandlerOptions{Level: slog.LevelDebug}
				handler := slog.NewTextHandler(os.Stderr, opts)
				slog.SetDefault(slog.New(handler))
			}
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
