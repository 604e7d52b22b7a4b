// Package process starts shell commands as child processes and exposes
// their output as raw byte streams, either through a stdout/stderr pipe
// pair or through a single pseudo-terminal channel.
package process

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Handle is one spawned child command. A Handle is owned by a single run:
// the caller drains its readers, calls Wait, then Close. It is never shared
// across runs.
type Handle interface {
	// Wait blocks until the child exits. A non-zero exit status is not an
	// error here; only wait-level failures are returned.
	Wait() error

	// ExitCode reports the child's exit status. Children killed by a signal
	// map to 128+signal. Valid only after Wait returns.
	ExitCode() int

	// Stdout is the child's standard output, or the combined pty channel
	// when the child runs under a pseudo-terminal.
	Stdout() io.Reader

	// Stderr is the child's standard error. Nil in pty mode: a pty has a
	// single output channel, so stderr is not separately observable.
	Stderr() io.Reader

	// Pty reports whether the child runs under a pseudo-terminal.
	Pty() bool

	// TeardownErr reports a spurious OS error swallowed while draining the
	// pty at child exit, if any. Diagnostic only.
	TeardownErr() error

	// Close releases the handle's descriptors.
	Close() error
}

// SpawnError reports a failure to create the child process.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawning %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Start launches command through the shell, under a pty when usePty is set.
func Start(command string, usePty bool) (Handle, error) {
	if usePty {
		return startPty(command)
	}
	return startPipe(command)
}

// filterExit strips the expected non-zero-exit error from Wait: exit status
// is read through ExitCode, not the error path.
func filterExit(err error) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return nil
	}
	return err
}
