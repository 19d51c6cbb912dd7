// Package prompt provides interactive terminal prompts for user input.
package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/isavita/coderev/internal/provider"
	"golang.org/x/term"
)

// IsInteractive returns true if stdin is connected to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// SelectModel displays an interactive list of models and returns the
// selected model ID. Requires an interactive terminal.
func SelectModel(models []provider.ModelInfo) (string, error) {
	if len(models) == 0 {
		return "", fmt.Errorf("no models available")
	}

	if !IsInteractive() {
		return "", fmt.Errorf("cannot prompt for model: not running in an interactive terminal")
	}

	options := make([]huh.Option[string], len(models))
	for i, m := range models {
		label := m.ID
		if m.Description != "" {
			label = fmt.Sprintf("%s - %s", m.ID, m.Description)
		}
		options[i] = huh.NewOption(label, m.ID)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a model").
				Description("The choice is persisted as the 'model' setting").
				Options(options...).
				Value(&selected),
		),
	).WithAccessible(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("model selection: %w", err)
	}

	return selected, nil
}
