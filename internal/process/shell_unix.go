//go:build !windows

package process

import "os/exec"

// shellCommand wraps cmdline in an interactive shell invocation.
func shellCommand(cmdline string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", cmdline)
}
