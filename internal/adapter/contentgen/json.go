package contentgen

import (
	"fmt"
	"strings"
)

// extractJSON pulls the first JSON document delimited by open/close out of
// a raw model response. Models wrap JSON in prose, markdown fences or
// <think> sections; everything outside the outermost delimiters is dropped.
func extractJSON(raw string, open, close byte) (string, error) {
	cleaned := strings.TrimSpace(raw)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
			cleaned = strings.TrimSpace(cleaned)
		}
	}

	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, close)
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON document found in model response: %s", cleaned)
	}
	return cleaned[start : end+1], nil
}

// extractJSONObject extracts the first {...} document.
func extractJSONObject(raw string) (string, error) {
	return extractJSON(raw, '{', '}')
}

// extractJSONArray extracts the first [...] document.
func extractJSONArray(raw string) (string, error) {
	return extractJSON(raw, '[', ']')
}
