//go:build windows

package process

import "os/exec"

// shellCommand wraps cmdline in a shell invocation.
func shellCommand(cmdline string) *exec.Cmd {
	return exec.Command("cmd", "/C", cmdline)
}
