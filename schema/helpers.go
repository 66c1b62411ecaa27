package schema

import "strings"

// RenderIssues renders issues to their report strings, preserving order.
// The slice is non-nil even when empty so JSON output stays an array.
func RenderIssues(issues []Issue) []string {
	output := make([]string, len(issues))
	for i, issue := range issues {
		output[i] = issue.String()
	}
	return output
}

// IsURLString reports whether the trimmed value starts with an http or https
// scheme prefix, case-insensitively.
func IsURLString(s string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://")
}
