package review

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CleanResponse normalizes model output for display. Some models wrap their
// review in a JSON code block with the text under a "response" key; in that
// case the inner text is extracted. Anything that fails to parse is returned
// as-is rather than dropped.
func CleanResponse(content string) string {
	content = strings.TrimSpace(content)

	jsonBody, ok := fencedJSON(content)
	if !ok {
		return content
	}

	parsed := gjson.Parse(jsonBody)
	if !parsed.IsObject() {
		return content
	}
	if response := parsed.Get("response"); response.Exists() {
		return strings.TrimSpace(response.String())
	}

	return content
}

// fencedJSON reports whether the content is a single fenced JSON object and
// returns the body between the fences.
func fencedJSON(content string) (string, bool) {
	body, ok := strings.CutPrefix(content, "```json")
	if !ok {
		body, ok = strings.CutPrefix(content, "```")
		if !ok {
			return "", false
		}
	}

	body, ok = strings.CutSuffix(strings.TrimSpace(body), "```")
	if !ok {
		return "", false
	}

	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "{") {
		return "", false
	}
	return body, true
}
