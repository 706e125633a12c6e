// Package metrics appends session telemetry to a newline-delimited JSON
// log under the project's .claude directory. Records are append-only and
// single-line, so concurrent invocations cannot corrupt each other and no
// locking is needed.
package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileName = "agent-metrics.jsonl"

// Entry is one session record. Timestamps are stored in UTC.
type Entry struct {
	Timestamp    time.Time `json:"timestamp"`
	FilesChanged int       `json:"files_changed"`
	Commit       string    `json:"commit,omitempty"`
	DurationHint string    `json:"duration_hint"`
}

// Path returns the metrics file location for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, ".claude", fileName)
}

// Append writes one entry as a single JSON line, creating the .claude
// directory and the file as needed. Prior records are never read or
// rewritten.
func Append(projectDir string, e Entry) error {
	e.Timestamp = e.Timestamp.UTC()

	path := Path(projectDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics entry: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append metrics entry: %w", err)
	}
	return nil
}

// ReadAll loads every parseable entry from the metrics file. A missing
// file yields an empty slice; unparseable lines are skipped.
func ReadAll(projectDir string) ([]Entry, error) {
	f, err := os.Open(Path(projectDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read metrics file: %w", err)
	}
	return entries, nil
}
