package git

import (
	"context"
	"fmt"
	"strings"
)

// Branch describes a local branch for display.
type Branch struct {
	// Name is the branch name.
	Name string

	// IsCurrent indicates whether this is the checked-out branch.
	IsCurrent bool
}

// ListBranches returns all local branches with the current branch marked.
func (r *Repository) ListBranches(ctx context.Context) ([]Branch, error) {
	names, err := r.listBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	current, err := r.GetCurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	branches := make([]Branch, len(names))
	for i, name := range names {
		branches[i] = Branch{Name: name, IsCurrent: name == current}
	}
	return branches, nil
}

// GetDefaultBranch attempts to determine the default base branch.
// It prefers the remote HEAD when configured, then probes for main/master.
func (r *Repository) GetDefaultBranch(ctx context.Context) (string, error) {
	// Try to get from remote HEAD
	ref, err := r.run(ctx, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err == nil {
		parts := strings.Split(ref, "/")
		if len(parts) > 0 {
			return parts[len(parts)-1], nil
		}
	}

	branches, err := r.listBranches(ctx)
	if err != nil {
		return "", err
	}

	for _, candidate := range []string{"main", "master"} {
		for _, b := range branches {
			if b == candidate {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("no default base branch found; expected one of: main, master")
}
