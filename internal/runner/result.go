package runner

import (
	"fmt"
	"strings"
)

// Result holds the outcome of one command execution. It is the only value
// that outlives a Run call.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string

	// Stdout is the captured standard output. In pty mode it holds the
	// combined output of both streams.
	Stdout string

	// Stderr is the captured standard error. Always empty in pty mode.
	Stderr string

	// Exited is the child's exit code.
	Exited int

	// Pty reports whether a pty was actually used, after any fallback.
	Pty bool

	// Exception records a spurious OS error swallowed during pty teardown.
	// Diagnostic only; nil in the common case.
	Exception error
}

// Ok reports whether the command exited zero.
func (r *Result) Ok() bool { return r.Exited == 0 }

// Failed is the inverse of Ok.
func (r *Result) Failed() bool { return !r.Ok() }

// ReturnCode is an alias for Exited.
func (r *Result) ReturnCode() int { return r.Exited }

func (r *Result) String() string {
	parts := []string{fmt.Sprintf("Command exited with status %d.", r.Exited)}
	for _, s := range []struct{ name, val string }{
		{"stdout", r.Stdout},
		{"stderr", r.Stderr},
	} {
		if s.val == "" {
			parts = append(parts, fmt.Sprintf("(no %s)", s.name))
			continue
		}
		parts = append(parts, fmt.Sprintf("=== %s ===\n%s\n", s.name, strings.TrimRight(s.val, " \t\r\n")))
	}
	return strings.Join(parts, "\n")
}
