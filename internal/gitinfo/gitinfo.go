// Package gitinfo reads working-tree status from git as a best-effort data
// source. Every query degrades to an empty result when git is absent, the
// directory is not a repository, or the command times out; callers never
// see an error.
package gitinfo

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Executor runs a git command and returns its stdout.
type Executor interface {
	Execute(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// realExecutor shells out to git with a fixed per-call timeout.
type realExecutor struct {
	timeout time.Duration
}

func (e *realExecutor) Execute(ctx context.Context, dir string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.Output()
}

// Change is one changed path with its git status letter ("A", "M", "D").
// Untracked files are reported as "A".
type Change struct {
	Status string
	Path   string
}

// Reader answers status queries for one working directory.
type Reader struct {
	workDir string
	git     Executor
}

// NewReader creates a reader that runs real git commands with a 10 second
// timeout per call.
func NewReader(workDir string) *Reader {
	return NewReaderWithExecutor(workDir, &realExecutor{timeout: 10 * time.Second})
}

// NewReaderWithExecutor creates a reader with a custom executor.
func NewReaderWithExecutor(workDir string, git Executor) *Reader {
	return &Reader{workDir: workDir, git: git}
}

// ChangedFiles lists staged, unstaged, and untracked paths relative to
// HEAD. Returns nil when git yields no data.
func (r *Reader) ChangedFiles(ctx context.Context) []Change {
	var changes []Change

	if out, err := r.git.Execute(ctx, r.workDir, "diff", "--name-status", "HEAD"); err == nil {
		for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
			status, path, found := strings.Cut(line, "\t")
			if !found || path == "" {
				continue
			}
			changes = append(changes, Change{Status: status, Path: path})
		}
	}

	if out, err := r.git.Execute(ctx, r.workDir, "ls-files", "--others", "--exclude-standard"); err == nil {
		for _, path := range strings.Split(strings.TrimSpace(string(out)), "\n") {
			if path = strings.TrimSpace(path); path != "" {
				changes = append(changes, Change{Status: "A", Path: path})
			}
		}
	}

	return changes
}

// FilesChanged counts changed files from the summary line of
// `git diff --stat HEAD`, e.g. " 3 files changed, 10 insertions(+)".
// Returns 0 when no data is available.
func (r *Reader) FilesChanged(ctx context.Context) int {
	out, err := r.git.Execute(ctx, r.workDir, "diff", "--stat", "HEAD")
	if err != nil {
		return 0
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	summary := lines[len(lines)-1]
	for _, part := range strings.Split(summary, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "file") && strings.Contains(part, "changed") {
			if n, err := strconv.Atoi(strings.Fields(part)[0]); err == nil {
				return n
			}
		}
	}
	return 0
}

// LatestCommit returns the most recent commit in one-line form, or "".
func (r *Reader) LatestCommit(ctx context.Context) string {
	out, err := r.git.Execute(ctx, r.workDir, "log", "--oneline", "-1")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// TrackedFiles lists every path git tracks in the repository.
func (r *Reader) TrackedFiles(ctx context.Context) []string {
	out, err := r.git.Execute(ctx, r.workDir, "ls-files")
	if err != nil {
		return nil
	}
	var files []string
	for _, f := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}
