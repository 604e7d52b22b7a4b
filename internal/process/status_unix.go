//go:build !windows

package process

import (
	"os"
	"syscall"
)

// exitStatus translates a wait status into a plain exit code. Children
// terminated by a signal map to the shell convention of 128+signal.
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
