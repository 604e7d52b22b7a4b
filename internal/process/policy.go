package process

import (
	"os"

	"golang.org/x/term"
)

// Policy decides whether a run should attempt pty execution. It only ever
// downgrades a request; when fallback is not permitted, pty mode is still
// attempted and allowed to fail at spawn time.
type Policy interface {
	// Decide returns whether to use a pty, and whether a pty request was
	// downgraded to pipe mode.
	Decide(requested, fallback bool) (usePty, fellBack bool)
}

// BasePolicy honors the request unchanged: no fallback.
type BasePolicy struct{}

func (BasePolicy) Decide(requested, fallback bool) (bool, bool) {
	return requested, false
}

// LocalPolicy downgrades pty requests when the controlling process itself
// has no interactive input terminal, since there is then no meaningful pty
// to hand to the child.
type LocalPolicy struct {
	// Interactive overrides the stdin terminal check. Nil means the real
	// check; tests substitute their own.
	Interactive func() bool
}

func (p LocalPolicy) Decide(requested, fallback bool) (bool, bool) {
	if !requested {
		return false, false
	}
	interactive := p.Interactive
	if interactive == nil {
		interactive = stdinIsTerminal
	}
	if !interactive() && fallback {
		return false, true
	}
	return true, false
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
