package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestRepo creates a temporary git repository for testing.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	// Initialize git repo
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	// Create initial commit
	writeFile(t, dir, "README.md", "# Test Repo\n")
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// setupBranchedRepo creates a repo whose "feature" branch adds a file on top
// of the default branch. Returns the repo dir and the default branch name.
func setupBranchedRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := setupTestRepo(t)

	repo, err := NewRepository(dir)
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}
	base, err := repo.GetCurrentBranch(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentBranch() failed: %v", err)
	}

	runGit(t, dir, "checkout", "-b", "feature")
	writeFile(t, dir, "feature.go", "package feature\n")
	runGit(t, dir, "add", "feature.go")
	runGit(t, dir, "commit", "-m", "Add feature")

	return dir, base
}

// runGit runs a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %s\n%s", args, err, output)
	}
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewRepository(t *testing.T) {
	dir := setupTestRepo(t)

	repo, err := NewRepository(dir)
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}

	if repo.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", repo.Dir(), dir)
	}
}

func TestNewRepository_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, err := NewRepository(dir)
	if err != ErrNotARepository {
		t.Errorf("expected ErrNotARepository, got %v", err)
	}
}

func TestGetCurrentBranch(t *testing.T) {
	dir := setupTestRepo(t)
	repo, _ := NewRepository(dir)

	branch, err := repo.GetCurrentBranch(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentBranch() failed: %v", err)
	}

	// Default branch is usually main or master
	if branch != "main" && branch != "master" {
		t.Errorf("GetCurrentBranch() = %q, expected main or master", branch)
	}
}

func TestValidateBranch(t *testing.T) {
	dir := setupTestRepo(t)
	repo, _ := NewRepository(dir)
	ctx := context.Background()

	branch, _ := repo.GetCurrentBranch(ctx)

	if err := repo.ValidateBranch(ctx, branch); err != nil {
		t.Errorf("ValidateBranch(%q) failed: %v", branch, err)
	}

	if err := repo.ValidateBranch(ctx, "nonexistent-branch"); err == nil {
		t.Error("ValidateBranch(nonexistent) should have failed")
	}
}

func TestValidateBranch_Suggestions(t *testing.T) {
	dir := setupTestRepo(t)
	runGit(t, dir, "checkout", "-b", "feature-login")
	repo, _ := NewRepository(dir)

	err := repo.ValidateBranch(context.Background(), "feature")
	if err == nil {
		t.Fatal("expected error for missing branch")
	}
	if got := err.Error(); !strings.Contains(got, "feature-login") {
		t.Errorf("expected suggestion mentioning feature-login, got: %s", got)
	}
}

func TestGetRootDir(t *testing.T) {
	dir := setupTestRepo(t)
	repo, _ := NewRepository(dir)

	root, err := repo.GetRootDir(context.Background())
	if err != nil {
		t.Fatalf("GetRootDir() failed: %v", err)
	}

	// macOS tmp dirs resolve through symlinks
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(root)
	if got != want {
		t.Errorf("GetRootDir() = %q, want %q", got, want)
	}
}
