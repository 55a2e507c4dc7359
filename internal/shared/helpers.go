// Package shared provides small string helpers used by the command line
// and application layers.
package shared

import "strings"

// SplitList splits a separated list such as a classpath, trimming each entry
// and dropping empty ones.
func SplitList(value string, separator string) []string {
	if separator == "" {
		return CompactStrings([]string{value})
	}
	return CompactStrings(strings.Split(value, separator))
}

// CompactStrings trims every value and drops the blank ones, keeping order.
// It returns nil when nothing is left.
func CompactStrings(values []string) []string {
	var out []string
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
