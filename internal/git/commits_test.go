package git

import (
	"context"
	"testing"
)

func TestGetCommits(t *testing.T) {
	dir, base := setupBranchedRepo(t)
	repo, _ := NewRepository(dir)

	commits, err := repo.GetCommits(context.Background(), base, "feature")
	if err != nil {
		t.Fatalf("GetCommits() failed: %v", err)
	}

	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}

	c := commits[0]
	if c.Subject != "Add feature" {
		t.Errorf("Subject = %q, want %q", c.Subject, "Add feature")
	}
	if c.Author != "Test User" {
		t.Errorf("Author = %q, want %q", c.Author, "Test User")
	}
	if c.ShortHash == "" || c.Hash == "" {
		t.Error("expected commit hashes to be populated")
	}
	if c.Date.IsZero() {
		t.Error("expected commit date to be parsed")
	}
}

func TestGetCommits_NoCommits(t *testing.T) {
	dir := setupTestRepo(t)
	runGit(t, dir, "checkout", "-b", "feature")
	repo, _ := NewRepository(dir)

	base, _ := repo.GetDefaultBranch(context.Background())

	commits, err := repo.GetCommits(context.Background(), base, "feature")
	if err != nil {
		t.Fatalf("GetCommits() failed: %v", err)
	}
	if len(commits) != 0 {
		t.Errorf("expected no commits, got %d", len(commits))
	}
}

func TestParseCommits_Malformed(t *testing.T) {
	// Entries with too few fields are skipped rather than failing the parse.
	commits := parseCommits("garbage without delimiters")
	if len(commits) != 0 {
		t.Errorf("expected malformed entry to be skipped, got %d commits", len(commits))
	}
}
