package question

import "strings"

// NormalizeOption trims surrounding whitespace from an option string.
func NormalizeOption(value string) string {
	return strings.TrimSpace(value)
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, NormalizeOption(value))
	}
	return normalized
}
