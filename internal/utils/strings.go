package utils

import "strings"

// NormalizeText lowercases and trims a free-text field for keyword matching.
// Returns "" for whitespace-only input.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsAny reports whether haystack contains at least one of the given
// substrings. Empty keywords are ignored. This is used to classify funds
// into sectors from their free-text name and category fields.
func ContainsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// ParseCSV splits a comma-separated string and returns trimmed non-empty values.
// Returns nil for empty/whitespace-only input.
func ParseCSV(s string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, v := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}
