package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Exit codes recognized by Claude Code.
const (
	ExitAllow = 0
	ExitBlock = 2
)

// Run reads one hook event from in, dispatches it to every matching
// handler, and returns the process exit code. All handlers run even after
// a block decision so every guard reports its findings.
func (r *Registry) Run(ctx context.Context, in io.Reader, stdout, stderr io.Writer) (code int) {
	// Never let a defect in a guard block a legitimate operation.
	defer func() {
		if p := recover(); p != nil {
			slog.Error("panic in hook run", "panic", p)
			code = ExitAllow
		}
	}()

	var input HookInput
	if err := json.NewDecoder(in).Decode(&input); err != nil {
		slog.Debug("failed to decode hook input", "error", err)
		return ExitAllow
	}

	event := Event(input.EventName)
	blocked := false
	for _, reg := range r.hooks {
		if reg.event != event || !matchesTool(reg.matcher, input.Tool) {
			continue
		}

		out, err := reg.handler(ctx, input)
		if err != nil {
			slog.Error("hook handler failed", "event", event, "tool", input.Tool, "error", err)
			continue
		}

		if out.Output != "" {
			fmt.Fprintln(stdout, out.Output)
		}
		if out.Notice != "" {
			fmt.Fprintln(stderr, out.Notice)
		}
		if out.Decision == "block" {
			blocked = true
			if out.Reason != "" {
				fmt.Fprintln(stderr, out.Reason)
			}
		}
	}

	if blocked {
		return ExitBlock
	}
	return ExitAllow
}

// RunExitCode runs the default registry against stdin.
func RunExitCode(ctx context.Context) int {
	return Default.Run(ctx, os.Stdin, os.Stdout, os.Stderr)
}
