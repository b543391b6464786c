package util

import "strings"

// TruncateText shortens s to at most max characters, replacing the tail
// with "..." when something was cut.
func TruncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// CleanJobTitle strips company/source suffixes like "Role - Company",
// "Role at Company" or "Role | Board" when the leading part is long enough
// to stand on its own.
func CleanJobTitle(title string) string {
	for _, sep := range []string{" - ", " at ", " | "} {
		if idx := strings.Index(title, sep); idx >= 0 {
			head := strings.TrimSpace(title[:idx])
			if len(head) > 10 {
				return head
			}
		}
	}
	return strings.TrimSpace(title)
}
