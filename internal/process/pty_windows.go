//go:build windows

package process

import "errors"

// ErrPtyUnsupported is returned when pty execution is requested on a
// platform without pseudo-terminals.
var ErrPtyUnsupported = errors.New("pty execution is not supported on this platform")

func startPty(cmdline string) (Handle, error) {
	return nil, &SpawnError{Command: cmdline, Err: ErrPtyUnsupported}
}
