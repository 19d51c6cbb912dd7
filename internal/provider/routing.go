package provider

import "strings"

// SplitModel maps a model setting to a provider name and a bare model
// identifier. An explicit "provider/model" prefix always wins; bare names
// are routed by convention: "claude-*" to the claude backend, everything
// else to the OpenAI-compatible backend.
func SplitModel(model string) (providerName, bareModel string) {
	if name, rest, ok := strings.Cut(model, "/"); ok {
		switch name {
		case "anthropic", "claude":
			return "claude", rest
		case "ollama":
			return "ollama", rest
		case "openai":
			return "openai", rest
		}
		// Unrecognized prefix: leave the value intact for an
		// OpenAI-compatible endpoint to interpret.
		return "openai", model
	}

	if strings.HasPrefix(model, "claude") {
		return "claude", model
	}
	return "openai", model
}
