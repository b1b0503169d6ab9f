// Package util provides shared string helpers used by the TUI screens.
package util

// TruncateString truncates a string to maxLen runes, adding "..." if it was
// cut. Plain rune truncation; table cells here carry no ANSI styling.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// JoinNames joins display names with commas, truncating the result to
// maxLen runes. Used by the wizard summary to list staff and services.
func JoinNames(names []string, maxLen int) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return TruncateString(out, maxLen)
}
