package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/isavita/coderev/internal/git"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	currentBranchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// RenderHeader displays a one-line section header.
func (r *Renderer) RenderHeader(text string) {
	if r.color {
		fmt.Fprintln(r.output, headerStyle.Render(text))
		return
	}
	fmt.Fprintln(r.output, text)
}

// RenderBranches displays local branches, marking the current one.
func (r *Renderer) RenderBranches(branches []git.Branch) {
	r.RenderHeader("Branches")
	for _, b := range branches {
		line := "  " + b.Name
		if b.IsCurrent {
			line = "* " + b.Name
			if r.color {
				line = currentBranchStyle.Render(line)
			}
		}
		fmt.Fprintln(r.output, line)
	}
}

// RenderPanel displays titled diagnostic content inside a border, used by
// debug mode to show resolved settings and prompts.
func (r *Renderer) RenderPanel(title, content string) {
	content = strings.TrimRight(content, "\n")

	if !r.color {
		fmt.Fprintf(r.output, "--- %s ---\n%s\n--- end %s ---\n", title, content, title)
		return
	}

	width := r.width - 4
	if width < 20 {
		width = 20
	}

	fmt.Fprintln(r.output, panelTitleStyle.Render(title))
	fmt.Fprintln(r.output, panelStyle.Width(width).Render(content))
}
