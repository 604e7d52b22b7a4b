//go:build windows

package runner

import "strings"

// Windows is the one platform whose newline convention diverges, so captured
// text is normalized there and nowhere else.
const universalNewlines = true

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
