// Package handlers implements the guard classifiers that run on Claude
// Code hook events:
//
//   - PreToolUse (Write|Edit|MultiEdit): secret detection (security.go),
//     protected-path enforcement (protect.go), and quality warnings
//     (quality.go)
//   - PostToolUse (Write|Edit|MultiEdit): TypeScript type checking
//     (typecheck.go)
//   - Stop: documentation-update suggestions (docsuggest.go) and session
//     metrics logging (track.go)
//
// Each guard is an independent, stateless classifier over one event. The
// security and protect guards can block (exit 2); everything else only
// warns or informs. Every guard is fail-open: when in doubt, allow.
package handlers

import "guardhooks/internal/hooks"

func init() {
	// PreToolUse guards — may block the edit
	hooks.RegisterHook(hooks.EventPreToolUse, "Write|Edit|MultiEdit", CheckSecrets)
	hooks.RegisterHook(hooks.EventPreToolUse, "Write|Edit|MultiEdit", ProtectFiles)
	hooks.RegisterHook(hooks.EventPreToolUse, "Write|Edit|MultiEdit", QualityCheck)

	// PostToolUse guards — informational
	hooks.RegisterHook(hooks.EventPostToolUse, "Write|Edit|MultiEdit", TypeScriptCheck)

	// Stop guards — session bookkeeping
	hooks.RegisterHook(hooks.EventStop, "*", SuggestDocUpdates)
	hooks.RegisterHook(hooks.EventStop, "*", TrackMetrics)
}
