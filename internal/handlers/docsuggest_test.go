package handlers

import (
	"strings"
	"testing"

	"guardhooks/internal/gitinfo"
)

func TestBuildSuggestionsNewDirectory(t *testing.T) {
	changes := []gitinfo.Change{
		{Status: "A", Path: "ingest/pipeline.go"},
		{Status: "A", Path: "ingest/worker.go"},
	}

	suggestions := buildSuggestions(changes, []string{"main.go"})
	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "New directory 'ingest/'") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a new-directory suggestion, got %v", suggestions)
	}
}

func TestBuildSuggestionsNewFileType(t *testing.T) {
	changes := []gitinfo.Change{{Status: "A", Path: "scripts/migrate.py"}}
	tracked := []string{"main.go", "cmd/root.go"}

	suggestions := buildSuggestions(changes, tracked)
	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "'.py' (Python)") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a new-file-type suggestion, got %v", suggestions)
	}
}

func TestBuildSuggestionsExistingFileType(t *testing.T) {
	changes := []gitinfo.Change{{Status: "A", Path: "internal/new.go"}}
	tracked := []string{"main.go"}

	for _, s := range buildSuggestions(changes, tracked) {
		if strings.Contains(s, "New file type") {
			t.Errorf("'.go' already exists in the repo, got %v", s)
		}
	}
}

func TestBuildSuggestionsDeletedFiles(t *testing.T) {
	t.Run("few deletions listed individually", func(t *testing.T) {
		changes := []gitinfo.Change{
			{Status: "D", Path: "old/feature.go"},
			{Status: "D", Path: "old/feature_helper.go"},
		}
		suggestions := buildSuggestions(changes, nil)
		count := 0
		for _, s := range suggestions {
			if strings.Contains(s, "deleted -> Check if removed feature") {
				count++
			}
		}
		if count != 2 {
			t.Errorf("expected 2 per-file deletion suggestions, got %v", suggestions)
		}
	})

	t.Run("many deletions summarized", func(t *testing.T) {
		changes := []gitinfo.Change{
			{Status: "D", Path: "a.go"},
			{Status: "D", Path: "b.go"},
			{Status: "D", Path: "c.go"},
			{Status: "D", Path: "d.go"},
		}
		suggestions := buildSuggestions(changes, nil)
		found := false
		for _, s := range suggestions {
			if strings.Contains(s, "4 files deleted") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a summarized deletion suggestion, got %v", suggestions)
		}
	})
}

func TestBuildSuggestionsConfigChange(t *testing.T) {
	changes := []gitinfo.Change{{Status: "M", Path: "package.json"}}

	suggestions := buildSuggestions(changes, nil)
	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "package.json modified") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a config-change suggestion, got %v", suggestions)
	}
}

func TestBuildSuggestionsLargeChange(t *testing.T) {
	var changes []gitinfo.Change
	for i := 0; i < 12; i++ {
		changes = append(changes, gitinfo.Change{Status: "M", Path: "pkg/file.go"})
	}

	suggestions := buildSuggestions(changes, nil)
	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "12 files changed") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a large-change suggestion, got %v", suggestions)
	}
}

func TestBuildSuggestionsNoChanges(t *testing.T) {
	if suggestions := buildSuggestions(nil, nil); len(suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", suggestions)
	}
}
