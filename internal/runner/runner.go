// Package runner orchestrates one command execution: it resolves options,
// decides pty versus pipe mode, launches the child, drains its output
// streams concurrently, and assembles a Result.
package runner

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/deixis/subshell/internal/iomux"
	"github.com/deixis/subshell/internal/process"
)

// Runner executes shell commands and captures their output.
//
// One Runner runs one command at a time: Run is not safe for concurrent use
// on the same instance. That contract is what lets the one-time fallback
// warning flag go unsynchronized. No operation is cancellable and nothing
// times out; a child that never exits blocks Run indefinitely.
type Runner struct {
	defaults Opts
	policy   process.Policy
	warnSink io.Writer

	warnedPtyFallback bool
}

// RunnerOption configures a Runner at construction.
type RunnerOption func(*Runner)

// WithPolicy substitutes the pty decision policy.
func WithPolicy(p process.Policy) RunnerOption {
	return func(r *Runner) { r.policy = p }
}

// WithWarnSink redirects the one-time pty fallback warning.
func WithWarnSink(w io.Writer) RunnerOption {
	return func(r *Runner) { r.warnSink = w }
}

// New creates a Runner with the given default option set. The defaults are
// validated here: an unrecognized hide value or encoding name is a
// configuration error at construction time, not at call time.
func New(defaults Opts, opts ...RunnerOption) (*Runner, error) {
	if _, err := NormalizeHide(defaults.Hide); err != nil {
		return nil, err
	}
	if err := iomux.CheckEncoding(defaults.Encoding); err != nil {
		return nil, &OptionError{Option: "encoding", Detail: err.Error()}
	}
	r := &Runner{
		defaults: defaults,
		policy:   process.LocalPolicy{},
		warnSink: os.Stderr,
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// Run executes command through the shell and returns its Result. When the
// command exits non-zero and warn is not set, the Result is returned along
// with a *Failure wrapping it.
func (r *Runner) Run(command string, overrides ...Option) (*Result, error) {
	opts := r.defaults
	for _, o := range overrides {
		o(&opts)
	}
	hide, err := NormalizeHide(opts.Hide)
	if err != nil {
		return nil, err
	}

	outStream := opts.OutStream
	if outStream == nil {
		outStream = os.Stdout
	}
	errStream := opts.ErrStream
	if errStream == nil {
		errStream = os.Stderr
	}

	// Decoders are built up front so a bad encoding surfaces before any
	// process is spawned. Each stream gets its own: decode state is
	// per-stream.
	outDec, err := iomux.NewDecoder(opts.Encoding)
	if err != nil {
		return nil, &OptionError{Option: "encoding", Detail: err.Error()}
	}
	errDec, err := iomux.NewDecoder(opts.Encoding)
	if err != nil {
		return nil, &OptionError{Option: "encoding", Detail: err.Error()}
	}

	if opts.Echo {
		fmt.Fprintf(outStream, "\x1b[1;37m%s\x1b[0m\n", command)
	}

	usePty, fellBack := r.policy.Decide(opts.Pty, opts.Fallback)
	if fellBack && !r.warnedPtyFallback {
		fmt.Fprintln(r.warnSink, "WARNING: stdin is not a pty; falling back to non-pty execution!")
		r.warnedPtyFallback = true
	}

	handle, err := process.Start(command, usePty)
	if err != nil {
		return nil, err
	}

	// One mux per active stream. Pty mode has a single combined channel,
	// pipe mode drains stdout and stderr concurrently so neither kernel
	// buffer can fill up and stall the child.
	muxes := []*iomux.Mux{
		{R: handle.Stdout(), Sink: outStream, Hide: hide.Out, Dec: outDec},
	}
	if !usePty {
		muxes = append(muxes, &iomux.Mux{R: handle.Stderr(), Sink: errStream, Hide: hide.Err, Dec: errDec})
	}

	var wg sync.WaitGroup
	for _, m := range muxes {
		wg.Add(1)
		go func(m *iomux.Mux) {
			defer wg.Done()
			m.Drain()
		}(m)
	}

	// Process exit does not imply the pipes are drained; both must complete
	// before the Result is assembled.
	waitErr := handle.Wait()
	wg.Wait()
	handle.Close()
	if waitErr != nil {
		return nil, fmt.Errorf("waiting for command: %w", waitErr)
	}

	stdout := muxes[0].Output()
	var stderr string
	if !usePty {
		stderr = muxes[1].Output()
	}
	if universalNewlines {
		stdout = normalizeNewlines(stdout)
		stderr = normalizeNewlines(stderr)
	}

	result := &Result{
		RunID:     uuid.New().String(),
		Stdout:    stdout,
		Stderr:    stderr,
		Exited:    handle.ExitCode(),
		Pty:       usePty,
		Exception: handle.TeardownErr(),
	}
	if result.Failed() && !opts.Warn {
		return result, &Failure{Result: result}
	}
	return result, nil
}
