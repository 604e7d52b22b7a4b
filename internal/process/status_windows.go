//go:build windows

package process

import "os"

func exitStatus(state *os.ProcessState) int {
	return state.ExitCode()
}
