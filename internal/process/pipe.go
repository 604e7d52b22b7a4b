package process

import (
	"io"
	"os"
	"os/exec"
)

// pipeHandle runs the child with independent stdout and stderr pipes. The
// parent keeps the read ends; the write ends are closed after the fork so
// each stream reaches EOF when the child exits.
type pipeHandle struct {
	cmd        *exec.Cmd
	outR, errR *os.File
}

func startPipe(cmdline string) (Handle, error) {
	outR, outW, err := os.Pipe()
	if err != nil {
		return nil, &SpawnError{Command: cmdline, Err: err}
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()
		return nil, &SpawnError{Command: cmdline, Err: err}
	}

	cmd := shellCommand(cmdline)
	cmd.Stdout = outW
	cmd.Stderr = errW

	if err := cmd.Start(); err != nil {
		outR.Close()
		outW.Close()
		errR.Close()
		errW.Close()
		return nil, &SpawnError{Command: cmdline, Err: err}
	}

	// The child holds its own copies of the write ends.
	outW.Close()
	errW.Close()

	return &pipeHandle{cmd: cmd, outR: outR, errR: errR}, nil
}

func (h *pipeHandle) Wait() error {
	return filterExit(h.cmd.Wait())
}

func (h *pipeHandle) ExitCode() int {
	return exitStatus(h.cmd.ProcessState)
}

func (h *pipeHandle) Stdout() io.Reader { return h.outR }
func (h *pipeHandle) Stderr() io.Reader { return h.errR }
func (h *pipeHandle) Pty() bool         { return false }

func (h *pipeHandle) TeardownErr() error { return nil }

func (h *pipeHandle) Close() error {
	h.outR.Close()
	return h.errR.Close()
}
