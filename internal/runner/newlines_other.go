//go:build !windows

package runner

// Captured bytes are preserved unchanged outside Windows.
const universalNewlines = false

func normalizeNewlines(s string) string { return s }
