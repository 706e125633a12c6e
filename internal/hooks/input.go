package hooks

import (
	"encoding/json"
	"fmt"
)

// HookInput is the JSON payload Claude Code writes to stdin when a hook
// fires. Fields that are absent from the payload decode to zero values;
// handlers must treat those as "no data", never as errors.
type HookInput struct {
	SessionID      string          `json:"session_id"`
	TranscriptPath string          `json:"transcript_path"`
	CWD            string          `json:"cwd"`
	EventName      string          `json:"hook_event_name"`
	Tool           string          `json:"tool_name"`
	ToolInput      json.RawMessage `json:"tool_input"`
	ToolResponse   json.RawMessage `json:"tool_response"`
	Prompt         string          `json:"prompt"`
}

// FileInput holds the parameters of a Write, Edit, or MultiEdit tool call.
type FileInput struct {
	FilePath  string `json:"file_path"`
	Content   string `json:"content"`
	NewString string `json:"new_string"`
}

// Text returns the new file content for a Write, or the replacement text
// for an Edit. Empty when the tool call carries neither.
func (f FileInput) Text() string {
	if f.Content != "" {
		return f.Content
	}
	return f.NewString
}

// GetFileInput decodes the tool parameters as a file operation.
func (in HookInput) GetFileInput() (FileInput, error) {
	if len(in.ToolInput) == 0 {
		return FileInput{}, fmt.Errorf("no tool input in %s event", in.EventName)
	}
	var fi FileInput
	if err := json.Unmarshal(in.ToolInput, &fi); err != nil {
		return FileInput{}, fmt.Errorf("failed to parse tool input: %w", err)
	}
	return fi, nil
}

// BashInput holds the parameters of a Bash tool call.
type BashInput struct {
	Command string `json:"command"`
}

// GetBashInput decodes the tool parameters as a bash command.
func (in HookInput) GetBashInput() (BashInput, error) {
	if len(in.ToolInput) == 0 {
		return BashInput{}, fmt.Errorf("no tool input in %s event", in.EventName)
	}
	var bi BashInput
	if err := json.Unmarshal(in.ToolInput, &bi); err != nil {
		return BashInput{}, fmt.Errorf("failed to parse tool input: %w", err)
	}
	return bi, nil
}
