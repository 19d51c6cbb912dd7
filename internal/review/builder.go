// Package review assembles the prompt sent to the model and cleans up the
// feedback that comes back.
package review

import (
	"fmt"
	"strings"

	"github.com/isavita/coderev/internal/git"
)

// maxDiffLen caps the diff content embedded in a prompt. Anything beyond
// this is truncated with a marker rather than failing the review.
const maxDiffLen = 50000

// Request carries everything the prompt builder needs for one review.
type Request struct {
	// Branch is the branch under review.
	Branch string

	// BaseBranch is the branch the diff was taken against.
	BaseBranch string

	// ChangedFiles lists the files changed between the branches.
	ChangedFiles []string

	// RequestedFiles lists explicitly requested files, when the user
	// narrowed the review with -f. Empty means the whole diff.
	RequestedFiles []string

	// Commits are the commits being reviewed, for context.
	Commits []git.Commit

	// Instructions are the resolved review guidelines.
	Instructions string

	// Diff is the textual diff to review.
	Diff string
}

// BuildUserPrompt constructs the review request sent as the user message.
func BuildUserPrompt(req *Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reviewing changes in branch '%s' compared to '%s'.\n\n", req.Branch, req.BaseBranch)

	if len(req.RequestedFiles) > 0 {
		b.WriteString("Reviewing specific files:\n")
		for _, f := range req.RequestedFiles {
			b.WriteString("- " + f + "\n")
		}
	} else if len(req.ChangedFiles) > 0 {
		b.WriteString("Changed files:\n")
		for _, f := range req.ChangedFiles {
			b.WriteString("- " + f + "\n")
		}
	}
	b.WriteString("\n")

	if len(req.Commits) > 0 {
		b.WriteString("Commits under review:\n")
		for _, c := range req.Commits {
			fmt.Fprintf(&b, "- %s %s\n", c.ShortHash, c.Subject)
		}
		b.WriteString("\n")
	}

	if req.Instructions != "" {
		b.WriteString(req.Instructions)
		b.WriteString("\n\n")
	}

	b.WriteString("Please review the following changes:\n\n")

	diff := req.Diff
	if len(diff) > maxDiffLen {
		diff = diff[:maxDiffLen] + "\n\n... [diff truncated for length] ..."
	}
	b.WriteString("```diff\n")
	b.WriteString(diff)
	b.WriteString("\n```\n")

	return b.String()
}
