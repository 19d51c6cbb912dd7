// Package config provides per-repository settings storage and per-invocation
// option resolution for the coderev CLI.
package config

import (
	_ "embed"
	"strings"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gpt-4o"

	// DefaultTemperature is the sampling temperature used when none is
	// configured.
	DefaultTemperature = 0.0

	// DefaultBaseBranch is the branch diffs are taken against when none is
	// configured.
	DefaultBaseBranch = "main"

	// ConfigFileName is the settings file name, stored at the repository root.
	ConfigFileName = ".coderev.json"
)

// DefaultSystemMessage is the built-in reviewer persona sent as the system
// prompt when no custom message is configured.
//
//go:embed system_message.md
var DefaultSystemMessage string

// DefaultReviewInstructions are the built-in review guidelines included in
// the prompt when no custom instructions are configured.
//
//go:embed review_instructions.md
var DefaultReviewInstructions string

func init() {
	DefaultSystemMessage = strings.TrimSpace(DefaultSystemMessage)
	DefaultReviewInstructions = strings.TrimSpace(DefaultReviewInstructions)
}
