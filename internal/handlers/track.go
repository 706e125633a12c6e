package handlers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"guardhooks/internal/config"
	"guardhooks/internal/gitinfo"
	"guardhooks/internal/hooks"
	"guardhooks/internal/metrics"
)

// TrackMetrics appends one session record to the project metrics log when
// the session stops. The record carries the current changed-file count and
// latest commit summary, both best-effort from git.
func TrackMetrics(ctx context.Context, input hooks.HookInput) (hooks.HookOutput, error) {
	projectDir := os.Getenv("CLAUDE_PROJECT_DIR")
	if projectDir == "" {
		projectDir = input.CWD
	}
	if projectDir == "" {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	cfg := config.LoadGuardsConfig(projectDir)
	if !cfg.Metrics {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	reader := gitinfo.NewReader(projectDir)
	entry := metrics.Entry{
		Timestamp:    time.Now(),
		FilesChanged: reader.FilesChanged(ctx),
		Commit:       reader.LatestCommit(ctx),
		DurationHint: "completed",
	}

	if err := metrics.Append(projectDir, entry); err != nil {
		slog.Error("failed to append session metrics", "error", err)
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	slog.Info("recorded session metrics",
		"session_id", input.SessionID,
		"files_changed", entry.FilesChanged)
	return hooks.HookOutput{Decision: "continue"}, nil
}
