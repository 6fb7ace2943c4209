package cli

import (
	"errors"
	"fmt"
)

// ValidationError reports arguments that failed to parse against a command's
// option schema. It is user-facing: the host prints the message and sets a
// non-zero exit code, without stack traces or log decoration.
type ValidationError struct {
	// Command is the qualified name of the command whose schema rejected the
	// input. Empty for the root.
	Command string

	Err error
}

func (e *ValidationError) Error() string {
	if e.Command == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// UserFacing marks the error as a plain user message.
func (e *ValidationError) UserFacing() bool { return true }

// IsUserFacing reports whether err should be shown to the user as a plain
// message rather than logged with full decoration.
func IsUserFacing(err error) bool {
	var uf interface{ UserFacing() bool }
	return errors.As(err, &uf) && uf.UserFacing()
}

// RuntimeError wraps a recoverable failure raised by a command's behavior
// hook, e.g. a transport error during a blocking operation. The dispatcher
// reports it through the active reporter exactly once and then re-raises it
// so the outer boundary can set the exit code.
type RuntimeError struct {
	Err error

	reported bool
}

func (e *RuntimeError) Error() string { return e.Err.Error() }

func (e *RuntimeError) Unwrap() error { return e.Err }

// Reported returns whether the dispatcher already surfaced this error via the
// reporter. Outer boundaries must not report it a second time.
func (e *RuntimeError) Reported() bool { return e.reported }
