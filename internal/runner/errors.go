package runner

import "fmt"

// OptionError reports an invalid option value, detected before any process
// is spawned.
type OptionError struct {
	Option string
	Detail string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid %q option: %s", e.Option, e.Detail)
}

// Failure is returned when a command exits non-zero and warn is not set.
// It carries the full Result for inspection.
type Failure struct {
	Result *Result
}

func (f *Failure) Error() string {
	return fmt.Sprintf("command exited with status %d", f.Result.Exited)
}
