package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/tvanryk/cli/pkg/suggest"
)

// Dispatcher orchestrates one invocation end-to-end: it resolves the command
// path against the registry, parses the remaining arguments into typed option
// values and either renders help or runs the command's behavior hook. A
// dispatcher executes synchronously; it shares nothing mutable across
// invocations beyond the read-only registry.
type Dispatcher struct {
	registry *Registry
	reporter Reporter
	logger   *slog.Logger

	stdin          io.Reader
	stdout, stderr io.Writer
}

// DispatchOptions configures a Dispatcher. Any nil field falls back to a
// sensible default: a silent reporter, a discarding logger and the process
// standard streams.
type DispatchOptions struct {
	Reporter Reporter
	Logger   *slog.Logger

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// NewDispatcher binds a registry to its collaborators.
func NewDispatcher(registry *Registry, options *DispatchOptions) *Dispatcher {
	if options == nil {
		options = &DispatchOptions{}
	}
	d := &Dispatcher{
		registry: registry,
		reporter: options.Reporter,
		logger:   options.Logger,
		stdin:    options.Stdin,
		stdout:   options.Stdout,
		stderr:   options.Stderr,
	}
	if d.reporter == nil {
		d.reporter = NopReporter{}
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.stdin == nil {
		d.stdin = os.Stdin
	}
	if d.stdout == nil {
		d.stdout = os.Stdout
	}
	if d.stderr == nil {
		d.stderr = os.Stderr
	}
	return d
}

// Dispatch resolves and runs one invocation. Help display returns nil. Parse
// failures come back as a *ValidationError carrying the offending command's
// qualified name; an error from the command's hook is reported through the
// reporter exactly once and re-raised as a *RuntimeError.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) error {
	path, remainder := splitCommandPath(args)

	// Builtin command paths, unless shadowed by a registered command.
	if len(path) > 0 {
		if _, ok := d.registry.commands[path[0]]; !ok {
			switch path[0] {
			case "help":
				spec, _ := d.registry.Resolve(path[1:])
				return d.showHelp(spec)
			case "version":
				d.printVersion()
				return nil
			}
		}
	}

	spec, leftover := d.registry.Resolve(path)
	remainder = append(append([]string{}, leftover...), remainder...)

	// A help flag anywhere in the remainder wins over everything else,
	// including flag validation.
	if hasHelpFlag(remainder) {
		return d.showHelp(spec)
	}

	if spec == d.registry.root && len(leftover) > 0 {
		// No command matched. Degrade to root help, surfacing near misses on
		// the debug channel only.
		d.logger.Debug("unknown command",
			"name", leftover[0],
			"suggestions", suggest.Similar(leftover[0], d.registry.topLevelNames(), 3),
		)
		return d.showHelp(spec)
	}

	values, positional, err := spec.effectiveSchema(d.registry.globals).Parse(remainder)
	if err != nil {
		return &ValidationError{Command: spec.QualifiedName(), Err: err}
	}

	state := &State{
		Args:     positional,
		Stdin:    d.stdin,
		Stdout:   d.stdout,
		Stderr:   d.stderr,
		Reporter: d.reporter,
		Strings:  d.registry.resources,
		spec:     spec,
		values:   values,
	}

	if spec == d.registry.root && GetOption[bool](state, "version") {
		d.printVersion()
		return nil
	}
	if spec.Exec == nil {
		return d.showHelp(spec)
	}

	invocation := uuid.NewString()
	d.logger.Debug("invocation start", "id", invocation, "command", spec.QualifiedName())
	err = spec.Exec(ctx, state)
	d.logger.Debug("invocation complete", "id", invocation, "command", spec.QualifiedName(), "failed", err != nil)
	if err != nil {
		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			rerr = &RuntimeError{Err: err}
		}
		if !rerr.reported {
			d.reporter.Error(rerr.Error())
			rerr.reported = true
		}
		return rerr
	}
	return nil
}

func (d *Dispatcher) showHelp(spec *CommandSpec) error {
	for _, line := range renderHelp(d.registry, spec) {
		if _, err := fmt.Fprintln(d.stdout, line); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) printVersion() {
	fmt.Fprintln(d.stdout, d.registry.name+" "+d.registry.version)
}

// splitCommandPath splits argv into the leading command-path tokens and the
// remainder starting at the first flag-like token.
func splitCommandPath(args []string) (path, remainder []string) {
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--h", "-help", "--help":
			return true
		}
	}
	return false
}
