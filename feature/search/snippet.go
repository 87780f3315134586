package search

import "strings"

// Snippet extracts a short excerpt of text centered on the first occurrence
// of q, capped at maxLen characters with ellipses where the text was cut.
// When q does not occur, the head of the text is returned.
func Snippet(text, q string, maxLen int) string {
	if text == "" || maxLen <= 0 {
		return ""
	}
	if len(text) <= maxLen {
		return text
	}

	idx := strings.Index(strings.ToLower(text), strings.ToLower(q))
	if idx < 0 {
		return text[:maxLen] + "..."
	}

	// Center the window on the match.
	start := idx - (maxLen-len(q))/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(text) {
		end = len(text)
		start = end - maxLen
		if start < 0 {
			start = 0
		}
	}

	out := text[start:end]
	if start > 0 {
		out = "..." + out
	}
	if end < len(text) {
		out = out + "..."
	}
	return out
}
