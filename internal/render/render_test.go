package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/isavita/coderev/internal/git"
)

func TestRenderReview_Plain(t *testing.T) {
	buf := new(bytes.Buffer)
	r := New(Options{Output: buf, ColorEnabled: false, Width: 80})

	content := "## Review\n\nLooks good."
	if err := r.RenderReview(content); err != nil {
		t.Fatalf("RenderReview() failed: %v", err)
	}

	// Without color the markdown passes through untouched.
	if got := strings.TrimSpace(buf.String()); got != content {
		t.Errorf("output = %q, want %q", got, content)
	}
}

func TestRenderReview_Styled(t *testing.T) {
	buf := new(bytes.Buffer)
	r := New(Options{Output: buf, ColorEnabled: true, Width: 80})

	if err := r.RenderReview("# Heading\n\nBody text."); err != nil {
		t.Fatalf("RenderReview() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "Body text.") {
		t.Errorf("rendered output missing content:\n%s", out)
	}
}

func TestRenderBranches(t *testing.T) {
	buf := new(bytes.Buffer)
	r := New(Options{Output: buf, ColorEnabled: false, Width: 80})

	r.RenderBranches([]git.Branch{
		{Name: "main"},
		{Name: "feature", IsCurrent: true},
	})

	out := buf.String()
	if !strings.Contains(out, "  main") {
		t.Errorf("missing main branch:\n%s", out)
	}
	if !strings.Contains(out, "* feature") {
		t.Errorf("current branch not marked:\n%s", out)
	}
}

func TestRenderPanel_Plain(t *testing.T) {
	buf := new(bytes.Buffer)
	r := New(Options{Output: buf, ColorEnabled: false, Width: 80})

	r.RenderPanel("System Message", "You are a reviewer.\n")

	out := buf.String()
	if !strings.Contains(out, "--- System Message ---") {
		t.Errorf("missing panel title:\n%s", out)
	}
	if !strings.Contains(out, "You are a reviewer.") {
		t.Errorf("missing panel content:\n%s", out)
	}
}

func TestNew_Defaults(t *testing.T) {
	r := New(Options{Width: 120})
	if r.output == nil {
		t.Error("expected default output writer")
	}
	if r.width != 120 {
		t.Errorf("width = %d, want 120", r.width)
	}
}
