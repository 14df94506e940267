package projection

import "strings"

// cleanText replaces the handful of smart-punctuation escape sequences
// that show up in scraped/LLM-authored source text with their plain-ASCII
// equivalents. Everything else passes through unchanged.
func cleanText(s string) string {
	replacer := strings.NewReplacer(
		"–", "-",
		"—", "--",
		"’", "'",
		"“", "\"",
		"”", "\"",
	)
	return replacer.Replace(s)
}

// firstWords returns the first n whitespace-separated words of s, followed
// by "..." if s had more.
func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) <= n {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields[:n], " ") + "..."
}
