package review

import (
	"strings"
	"testing"

	"github.com/isavita/coderev/internal/git"
)

func TestBuildUserPrompt(t *testing.T) {
	req := &Request{
		Branch:       "feature",
		BaseBranch:   "main",
		ChangedFiles: []string{"handler.go", "service.go"},
		Commits: []git.Commit{
			{ShortHash: "abc1234", Subject: "Add login handler"},
		},
		Instructions: "Focus on error handling.",
		Diff:         "diff --git a/handler.go b/handler.go\n+func Login() {}",
	}

	prompt := BuildUserPrompt(req)

	for _, want := range []string{
		"branch 'feature' compared to 'main'",
		"Changed files:",
		"- handler.go",
		"- service.go",
		"abc1234 Add login handler",
		"Focus on error handling.",
		"```diff",
		"+func Login() {}",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildUserPrompt_RequestedFiles(t *testing.T) {
	req := &Request{
		Branch:         "feature",
		BaseBranch:     "main",
		ChangedFiles:   []string{"handler.go", "service.go"},
		RequestedFiles: []string{"handler.go"},
		Diff:           "x",
	}

	prompt := BuildUserPrompt(req)

	if !strings.Contains(prompt, "Reviewing specific files:") {
		t.Error("expected specific-files section")
	}
	if strings.Contains(prompt, "Changed files:") {
		t.Error("changed-files section should be replaced by the requested list")
	}
	if strings.Contains(prompt, "- service.go") {
		t.Error("unrequested file listed in prompt")
	}
}

func TestBuildUserPrompt_TruncatesLargeDiff(t *testing.T) {
	req := &Request{
		Branch:     "feature",
		BaseBranch: "main",
		Diff:       strings.Repeat("x", maxDiffLen+100),
	}

	prompt := BuildUserPrompt(req)

	if !strings.Contains(prompt, "[diff truncated for length]") {
		t.Error("expected truncation marker")
	}
	if len(prompt) > maxDiffLen+1000 {
		t.Errorf("prompt length %d suggests the diff was not truncated", len(prompt))
	}
}
