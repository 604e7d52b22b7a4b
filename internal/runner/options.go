package runner

import (
	"fmt"
	"io"
)

// Opts is the flattened option set for one run. A Runner carries a complete
// default Opts resolved at construction; per-run overrides are applied to a
// copy, so defaults never leak between calls.
type Opts struct {
	// Warn returns the Result instead of a Failure on non-zero exit.
	Warn bool

	// Hide suppresses live echo per stream. One of the hide vocabulary
	// values; see NormalizeHide.
	Hide string

	// Pty requests pty-backed execution.
	Pty bool

	// Fallback permits silent downgrade to pipe mode when a pty cannot be
	// meaningfully provided.
	Fallback bool

	// Echo prints the command line before execution.
	Echo bool

	// Encoding names the text codec for the child's output. Empty selects
	// the default.
	Encoding string

	// OutStream and ErrStream are the live echo destinations. Nil selects
	// the process's own stdout/stderr.
	OutStream io.Writer
	ErrStream io.Writer
}

// Option overrides one field of the default Opts for a single run.
type Option func(*Opts)

// Warn suppresses the Failure error on non-zero exit.
func Warn(v bool) Option { return func(o *Opts) { o.Warn = v } }

// Hide sets which streams are suppressed from live echo.
func Hide(v string) Option { return func(o *Opts) { o.Hide = v } }

// Pty requests pty-backed execution.
func Pty(v bool) Option { return func(o *Opts) { o.Pty = v } }

// Fallback permits the pty-to-pipe downgrade.
func Fallback(v bool) Option { return func(o *Opts) { o.Fallback = v } }

// Echo prints the command line before running it.
func Echo(v bool) Option { return func(o *Opts) { o.Echo = v } }

// Encoding overrides the output text codec.
func Encoding(name string) Option { return func(o *Opts) { o.Encoding = name } }

// OutStream overrides the stdout echo destination.
func OutStream(w io.Writer) Option { return func(o *Opts) { o.OutStream = w } }

// ErrStream overrides the stderr echo destination.
func ErrStream(w io.Writer) Option { return func(o *Opts) { o.ErrStream = w } }

// HideSet is the canonical form of the hide option.
type HideSet struct {
	Out bool
	Err bool
}

// hideVocabulary lists the accepted hide values.
const hideVocabulary = `"", "none", "false", "out", "stdout", "err", "stderr", "both", "true"`

// NormalizeHide maps the hide vocabulary to its canonical set. Any other
// value is a configuration error, reported before execution begins.
func NormalizeHide(v string) (HideSet, error) {
	switch v {
	case "", "none", "false":
		return HideSet{}, nil
	case "out", "stdout":
		return HideSet{Out: true}, nil
	case "err", "stderr":
		return HideSet{Err: true}, nil
	case "both", "true":
		return HideSet{Out: true, Err: true}, nil
	default:
		return HideSet{}, &OptionError{
			Option: "hide",
			Detail: fmt.Sprintf("got %q, want one of %s", v, hideVocabulary),
		}
	}
}
