package stringsutil

import "strings"

// SplitTrimmed splits a comma-separated value, trims whitespace and
// drops empty entries. Used for list-valued env vars like CORS_ORIGINS.
func SplitTrimmed(value string) []string {
	var result []string

	for _, s := range strings.Split(value, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}
