//go:build !windows

package process

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// ptyHandle runs the child under a pseudo-terminal. The pty master is the
// single combined output channel; stderr is not separately observable.
type ptyHandle struct {
	cmd  *exec.Cmd
	ptmx *os.File
	out  *ptyReader
}

func startPty(cmdline string) (Handle, error) {
	cmd := shellCommand(cmdline)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, &SpawnError{Command: cmdline, Err: err}
	}
	return &ptyHandle{cmd: cmd, ptmx: ptmx, out: &ptyReader{f: ptmx}}, nil
}

func (h *ptyHandle) Wait() error {
	return filterExit(h.cmd.Wait())
}

func (h *ptyHandle) ExitCode() int {
	return exitStatus(h.cmd.ProcessState)
}

func (h *ptyHandle) Stdout() io.Reader { return h.out }
func (h *ptyHandle) Stderr() io.Reader { return nil }
func (h *ptyHandle) Pty() bool         { return true }

func (h *ptyHandle) TeardownErr() error { return h.out.spurious }

func (h *ptyHandle) Close() error {
	return h.ptmx.Close()
}

// ptyReader reads from the pty master. On Linux the master raises EIO once
// the child side closes; that is the normal end-of-stream signal here, so it
// is translated to EOF and kept for diagnostics.
type ptyReader struct {
	f        *os.File
	spurious error
}

func (r *ptyReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if err != nil && errors.Is(err, syscall.EIO) {
		r.spurious = err
		return n, io.EOF
	}
	return n, err
}
