package cli

import (
	"fmt"
	"io"
)

// State is the ephemeral per-invocation object handed to a command's Exec
// hook. It carries the resolved option values, the leftover positional
// arguments and the injected collaborators. A State is destroyed when the
// invocation completes; it holds a non-owning reference to its spec.
type State struct {
	// Args contains the positional arguments left over after command
	// resolution and flag parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Reporter surfaces progress text during long-running operations.
	// Never nil.
	Reporter Reporter

	// Strings looks up user-visible text by symbolic key, e.g.
	// "status.connecting".
	Strings *Resources

	spec   *CommandSpec
	values Values
}

// Command returns the spec this invocation is bound to.
func (s *State) Command() *CommandSpec { return s.spec }

// GetOption retrieves a resolved option value by long name, with type
// inference:
//
//	verbose := cli.GetOption[bool](s, "verbose")
//	name := cli.GetOption[string](s, "name")
//
// An unknown name or a mismatched type means the option was never declared in
// the command's merged schema. That is a programming error, and it's better
// to fail LOUD and EARLY than to silently misbehave, so GetOption panics.
func GetOption[T any](s *State, name string) T {
	value, ok := s.values[name]
	if !ok {
		panic(fmt.Sprintf("internal error: option %q not declared for command %q", name, s.spec.QualifiedName()))
	}
	if value == nil {
		return *new(T)
	}
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for option %q in command %q: stored %T, requested %T",
			name, s.spec.QualifiedName(), value, *new(T)))
	}
	return v
}
