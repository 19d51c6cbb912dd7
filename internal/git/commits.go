package git

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Delimiter used for parsing git log output.
const commitDelimiter = "|||COMMIT|||"

// GetCommits returns commits on the target branch that are not on base.
func (r *Repository) GetCommits(ctx context.Context, base, target string) ([]Commit, error) {
	// Format: hash|||short_hash|||author|||date|||subject|||COMMIT|||
	format := "%H" + commitDelimiter +
		"%h" + commitDelimiter +
		"%an" + commitDelimiter +
		"%aI" + commitDelimiter +
		"%s" + commitDelimiter

	output, err := r.run(ctx, "log", base+".."+target, "--pretty=format:"+format)
	if err != nil {
		return nil, fmt.Errorf("getting commits: %w", err)
	}

	if output == "" {
		return nil, nil
	}

	return parseCommits(output), nil
}

// parseCommits parses the git log output into Commit structs.
func parseCommits(output string) []Commit {
	var commits []Commit

	entries := strings.Split(output, commitDelimiter+"\n")

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		// Last entry may keep its trailing delimiter
		entry = strings.TrimSuffix(entry, commitDelimiter)

		parts := strings.Split(entry, commitDelimiter)
		if len(parts) < 5 {
			continue
		}

		date, _ := time.Parse(time.RFC3339, parts[3])

		commits = append(commits, Commit{
			Hash:      parts[0],
			ShortHash: parts[1],
			Author:    parts[2],
			Date:      date,
			Subject:   parts[4],
		})
	}

	return commits
}
