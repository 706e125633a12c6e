// Package hooks implements the event model and dispatch loop for Claude Code
// hook invocations. A single binary invocation reads one JSON event from
// stdin, runs every registered handler whose event and tool matcher apply,
// and maps the combined result to a process exit code: 0 to allow the
// operation (possibly with warnings printed), 2 to block it.
//
// The loop is fail-open throughout: malformed input, handler errors, and
// panics all resolve to exit 0. Only a handler that explicitly returns a
// block decision can produce exit 2.
package hooks

import (
	"context"
	"strings"
)

// Event identifies a Claude Code hook event.
type Event string

const (
	EventPreToolUse       Event = "PreToolUse"
	EventPostToolUse      Event = "PostToolUse"
	EventUserPromptSubmit Event = "UserPromptSubmit"
	EventNotification     Event = "Notification"
	EventStop             Event = "Stop"
	EventSubagentStop     Event = "SubagentStop"
	EventPreCompact       Event = "PreCompact"
)

// Handler processes a single hook event.
type Handler func(ctx context.Context, input HookInput) (HookOutput, error)

// HookOutput is the result of one handler run.
type HookOutput struct {
	// Decision is "approve", "continue", or "block". Only "block" affects
	// the exit code.
	Decision string

	// Reason explains a block decision. Printed to stderr so Claude Code
	// surfaces it as the deny reason.
	Reason string

	// Output is diagnostic text printed to stdout (warnings, findings).
	Output string

	// Notice is informational text printed to stderr, used by handlers
	// that must not interfere with stdout.
	Notice string
}

type registration struct {
	event   Event
	matcher string
	handler Handler
}

// Registry holds an ordered list of hook registrations.
type Registry struct {
	hooks []registration
}

// Register adds a handler for an event. The matcher is a pipe-separated
// list of tool names ("Write|Edit|MultiEdit") or "*" to match any tool.
func (r *Registry) Register(event Event, matcher string, h Handler) {
	r.hooks = append(r.hooks, registration{event: event, matcher: matcher, handler: h})
}

func matchesTool(matcher, tool string) bool {
	if matcher == "*" || matcher == ".*" {
		return true
	}
	for _, m := range strings.Split(matcher, "|") {
		if m == tool {
			return true
		}
	}
	return false
}

// Default is the registry populated by handler packages in their init
// functions.
var Default = &Registry{}

// RegisterHook adds a handler to the default registry.
func RegisterHook(event Event, matcher string, h Handler) {
	Default.Register(event, matcher, h)
}
