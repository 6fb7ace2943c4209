package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CommandSpec is a node in the command tree: a static description of one
// invocable command. Specs are registered once at startup and are read-only
// during dispatch.
type CommandSpec struct {
	// Name is a single word identifying the command under its parent.
	Name string

	// Description is the one-line banner shown in help output.
	Description string

	// Hidden excludes the command from listings. Hidden commands still
	// resolve when named exactly.
	Hidden bool

	// Options declares the command-specific flags. The effective schema is
	// the union with the global schema; command definitions win on collision.
	Options *Schema

	// SubCommands lists nested commands in declaration order.
	SubCommands []*CommandSpec

	// Exec is the command's behavior hook. It receives the per-invocation
	// [State]. A command with a nil Exec renders its help instead.
	Exec func(ctx context.Context, s *State) error

	qualifiedName string
}

// QualifiedName returns the dot-joined path from the registry root to this
// command, e.g. "device.reboot". Empty for the root pseudo-command.
func (c *CommandSpec) QualifiedName() string { return c.qualifiedName }

func (c *CommandSpec) findSubCommand(name string) *CommandSpec {
	for _, sub := range c.SubCommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// effectiveSchema merges the shared global schema with the command's own
// options.
func (c *CommandSpec) effectiveSchema(globals *Schema) *Schema {
	return globals.Merge(c.Options)
}

// qualify assigns dot-joined qualified names to a subtree.
func qualify(spec *CommandSpec, parent string) {
	if parent == "" {
		spec.qualifiedName = spec.Name
	} else {
		spec.qualifiedName = parent + "." + spec.Name
	}
	for _, sub := range spec.SubCommands {
		qualify(sub, spec.qualifiedName)
	}
}

// validateSpec checks a spec subtree before registration.
func validateSpec(spec *CommandSpec, path []string) error {
	if spec.Name == "" {
		if len(path) == 0 {
			return errors.New("command has no name")
		}
		return fmt.Errorf("subcommand under %q has no name", strings.Join(path, "."))
	}
	if strings.Contains(spec.Name, " ") {
		return fmt.Errorf("command name %q contains spaces", spec.Name)
	}
	current := append(path, spec.Name)
	seen := make(map[string]struct{}, len(spec.SubCommands))
	for _, sub := range spec.SubCommands {
		if _, ok := seen[sub.Name]; ok {
			return fmt.Errorf("duplicate subcommand %q under %q", sub.Name, strings.Join(current, "."))
		}
		seen[sub.Name] = struct{}{}
		if err := validateSpec(sub, current); err != nil {
			return err
		}
	}
	return nil
}
