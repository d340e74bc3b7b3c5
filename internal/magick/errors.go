package magick

import "fmt"

// RunError describes a failed engine invocation. Stderr keeps whatever the
// engine printed, it is usually the only hint about what went wrong.
type RunError struct {
	Cmd      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *RunError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' failed with '%s'", e.Cmd, e.Stderr)
	}
	return fmt.Sprintf("command '%s' failed: %v", e.Cmd, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
