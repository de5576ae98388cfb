package util

import "strings"

// TruncateWords returns s cut down to at most maxWords whitespace-separated
// words. Transcripts are truncated this way to bound downstream prompt size.
func TruncateWords(s string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ")
}
