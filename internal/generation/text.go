package generation

import (
	"strings"
)

// Preview returns the first n characters of s, trimmed of surrounding
// whitespace.
func Preview(s string, n int) string {
	return strings.TrimSpace(head(s, n))
}

func head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// FallbackTitle is the title used when no remote title is available.
func FallbackTitle(content string) string {
	return "Quiz on " + Preview(content, 30) + "..."
}

// WordsTitle builds a title from the first five space-separated words.
func WordsTitle(content string) string {
	words := strings.Split(content, " ")
	if len(words) > 5 {
		words = words[:5]
	}
	return "Quiz on " + strings.Join(words, " ") + "..."
}
