package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// GetBranchDiff returns the diff between the base and target branches,
// optionally restricted to specific files. An empty diff is an error: the
// caller should not proceed to a model call with nothing to review.
func (r *Repository) GetBranchDiff(ctx context.Context, base, target string, files []string) (string, error) {
	if base == target {
		return "", fmt.Errorf("cannot compare %s with itself; specify a different branch to review", target)
	}

	if err := r.ValidateBranch(ctx, target); err != nil {
		return "", err
	}
	if err := r.ValidateBranch(ctx, base); err != nil {
		return "", fmt.Errorf("base %w", err)
	}

	if len(files) > 0 {
		if err := r.validateFiles(ctx, target, files); err != nil {
			return "", err
		}
	}

	args := []string{"diff", base + "..." + target}
	if len(files) > 0 {
		args = append(args, "--")
		args = append(args, files...)
	}

	diff, err := r.run(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("getting diff: %w", err)
	}

	if diff == "" {
		if len(files) > 0 {
			return "", fmt.Errorf("no changes found between %s and %s for the specified files: %s",
				target, base, strings.Join(files, ", "))
		}
		return "", fmt.Errorf("no changes found between %s and %s", target, base)
	}

	return diff, nil
}

// GetChangedFiles returns the paths changed between base and target.
func (r *Repository) GetChangedFiles(ctx context.Context, base, target string) ([]string, error) {
	output, err := r.run(ctx, "diff", "--name-only", base+"..."+target)
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// GetDiffStats returns summary statistics for the diff between base and target.
func (r *Repository) GetDiffStats(ctx context.Context, base, target string) (DiffStats, error) {
	output, err := r.run(ctx, "diff", "--numstat", base+"..."+target)
	if err != nil {
		return DiffStats{}, fmt.Errorf("getting diff numstat: %w", err)
	}

	return parseNumstat(output), nil
}

// parseNumstat sums git diff --numstat output.
// Format: additions<tab>deletions<tab>filepath
func parseNumstat(output string) DiffStats {
	var stats DiffStats
	if output == "" {
		return stats
	}

	for _, line := range strings.Split(output, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}

		// Binary files show "-" for additions/deletions
		adds, _ := strconv.Atoi(parts[0])
		dels, _ := strconv.Atoi(parts[1])

		stats.FilesChanged++
		stats.Additions += adds
		stats.Deletions += dels
	}

	return stats
}

// validateFiles ensures every requested file exists in the target tree.
func (r *Repository) validateFiles(ctx context.Context, target string, files []string) error {
	output, err := r.run(ctx, "ls-tree", "-r", "--name-only", target)
	if err != nil {
		return fmt.Errorf("listing repository files: %w", err)
	}

	tracked := make(map[string]bool)
	for _, path := range strings.Split(output, "\n") {
		tracked[path] = true
	}

	for _, file := range files {
		if !tracked[file] {
			return fmt.Errorf("file not found in repository: %s", file)
		}
	}
	return nil
}
