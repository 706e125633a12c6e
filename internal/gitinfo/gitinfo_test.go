package gitinfo

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

// mockExecutor maps command argument lists to canned responses, recording
// everything it is asked to run.
type mockExecutor struct {
	responses map[string]mockResponse
	executed  [][]string
}

type mockResponse struct {
	output []byte
	err    error
}

func newMockExecutor() *mockExecutor {
	return &mockExecutor{responses: map[string]mockResponse{}}
}

func (m *mockExecutor) Execute(ctx context.Context, dir string, args ...string) ([]byte, error) {
	m.executed = append(m.executed, args)
	key := fmt.Sprintf("%v", args)
	if resp, ok := m.responses[key]; ok {
		return resp.output, resp.err
	}
	return nil, fmt.Errorf("command not stubbed: %v", args)
}

func (m *mockExecutor) set(args []string, output string, err error) {
	m.responses[fmt.Sprintf("%v", args)] = mockResponse{output: []byte(output), err: err}
}

func TestChangedFiles(t *testing.T) {
	git := newMockExecutor()
	git.set([]string{"diff", "--name-status", "HEAD"}, "M\tmain.go\nA\tnewfile.go\nD\told.go\n", nil)
	git.set([]string{"ls-files", "--others", "--exclude-standard"}, "untracked.txt\n", nil)

	r := NewReaderWithExecutor("/repo", git)
	changes := r.ChangedFiles(context.Background())

	want := []Change{
		{Status: "M", Path: "main.go"},
		{Status: "A", Path: "newfile.go"},
		{Status: "D", Path: "old.go"},
		{Status: "A", Path: "untracked.txt"},
	}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("unexpected changes:\ngot  %v\nwant %v", changes, want)
	}
}

func TestChangedFilesNoRepo(t *testing.T) {
	git := newMockExecutor()
	// Both commands fail; the reader degrades to no data.
	r := NewReaderWithExecutor("/not-a-repo", git)

	if changes := r.ChangedFiles(context.Background()); changes != nil {
		t.Errorf("expected nil changes, got %v", changes)
	}
}

func TestFilesChanged(t *testing.T) {
	t.Run("summary line parsed", func(t *testing.T) {
		git := newMockExecutor()
		git.set([]string{"diff", "--stat", "HEAD"},
			" main.go   | 10 +++++-----\n cmd/run.go |  2 +-\n 3 files changed, 10 insertions(+), 2 deletions(-)\n", nil)

		r := NewReaderWithExecutor("/repo", git)
		if n := r.FilesChanged(context.Background()); n != 3 {
			t.Errorf("expected 3, got %d", n)
		}
	})

	t.Run("single file", func(t *testing.T) {
		git := newMockExecutor()
		git.set([]string{"diff", "--stat", "HEAD"},
			" main.go | 1 +\n 1 file changed, 1 insertion(+)\n", nil)

		r := NewReaderWithExecutor("/repo", git)
		if n := r.FilesChanged(context.Background()); n != 1 {
			t.Errorf("expected 1, got %d", n)
		}
	})

	t.Run("no data", func(t *testing.T) {
		git := newMockExecutor()
		r := NewReaderWithExecutor("/repo", git)
		if n := r.FilesChanged(context.Background()); n != 0 {
			t.Errorf("expected 0, got %d", n)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		git := newMockExecutor()
		git.set([]string{"diff", "--stat", "HEAD"}, "", nil)
		r := NewReaderWithExecutor("/repo", git)
		if n := r.FilesChanged(context.Background()); n != 0 {
			t.Errorf("expected 0, got %d", n)
		}
	})
}

func TestLatestCommit(t *testing.T) {
	git := newMockExecutor()
	git.set([]string{"log", "--oneline", "-1"}, "abc1234 Add request validation\n", nil)

	r := NewReaderWithExecutor("/repo", git)
	if got := r.LatestCommit(context.Background()); got != "abc1234 Add request validation" {
		t.Errorf("unexpected commit: %q", got)
	}

	t.Run("no commits", func(t *testing.T) {
		empty := newMockExecutor()
		r := NewReaderWithExecutor("/repo", empty)
		if got := r.LatestCommit(context.Background()); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestTrackedFiles(t *testing.T) {
	git := newMockExecutor()
	git.set([]string{"ls-files"}, "main.go\ncmd/root.go\n\n", nil)

	r := NewReaderWithExecutor("/repo", git)
	files := r.TrackedFiles(context.Background())
	want := []string{"main.go", "cmd/root.go"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("unexpected files: got %v, want %v", files, want)
	}
}

func TestNewReaderDefaults(t *testing.T) {
	r := NewReader("/repo")
	if r.workDir != "/repo" {
		t.Errorf("unexpected workDir: %s", r.workDir)
	}
	if r.git == nil {
		t.Error("expected a default executor")
	}
}
