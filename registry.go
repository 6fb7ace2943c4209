package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Alias maps an alternate top-level name onto an existing command's qualified
// name. Aliases never chain: the target is always a real command, validated
// at registration time.
type Alias struct {
	Name   string
	Target string
	Hidden bool
}

// Registry owns the root set of command specs plus the alias table. It is
// built once at startup and read-only afterwards, which makes concurrent
// reads safe by construction.
type Registry struct {
	name      string
	version   string
	commands  map[string]*CommandSpec
	aliases   map[string]*Alias
	globals   *Schema
	resources *Resources
	root      *CommandSpec
}

// NewRegistry constructs an empty registry for the named tool. The
// description becomes the banner of the root pseudo-command.
func NewRegistry(name, version, description string) *Registry {
	return &Registry{
		name:      name,
		version:   version,
		commands:  make(map[string]*CommandSpec),
		aliases:   make(map[string]*Alias),
		globals:   GlobalSchema(name),
		resources: DefaultResources(),
		root:      &CommandSpec{Name: name, Description: description, Hidden: true},
	}
}

// Name returns the tool name.
func (r *Registry) Name() string { return r.name }

// Version returns the tool version string.
func (r *Registry) Version() string { return r.version }

// Root returns the hidden-root pseudo-command. Resolution falls back to it
// when no path segment matches.
func (r *Registry) Root() *CommandSpec { return r.root }

// Register inserts a root-level command spec and assigns qualified names to
// its whole subtree. It fails if the name is already taken by a command or
// an alias.
func (r *Registry) Register(spec *CommandSpec) error {
	if err := validateSpec(spec, nil); err != nil {
		return err
	}
	if _, ok := r.commands[spec.Name]; ok {
		return fmt.Errorf("command %q already registered", spec.Name)
	}
	if _, ok := r.aliases[spec.Name]; ok {
		return fmt.Errorf("command %q conflicts with a registered alias", spec.Name)
	}
	qualify(spec, "")
	r.commands[spec.Name] = spec
	r.root.SubCommands = append(r.root.SubCommands, spec)
	return nil
}

// RegisterAlias inserts an alternate name for an existing command. It fails
// if the name collides with a real top-level command or another alias, or if
// the target does not name a registered command.
func (r *Registry) RegisterAlias(name, target string, hidden bool) error {
	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("alias %q conflicts with a registered command", name)
	}
	if _, ok := r.aliases[name]; ok {
		return fmt.Errorf("alias %q already registered", name)
	}
	if r.Lookup(target) == nil {
		return fmt.Errorf("alias %q targets unknown command %q", name, target)
	}
	r.aliases[name] = &Alias{Name: name, Target: target, Hidden: hidden}
	return nil
}

// Lookup walks a dot-joined qualified name down to its spec. Returns nil if
// any segment is missing.
func (r *Registry) Lookup(qualifiedName string) *CommandSpec {
	segments := strings.Split(qualifiedName, ".")
	current, ok := r.commands[segments[0]]
	if !ok {
		return nil
	}
	for _, segment := range segments[1:] {
		if current = current.findSubCommand(segment); current == nil {
			return nil
		}
	}
	return current
}

// Resolve walks the children chain using successive path segments. A
// top-level segment may match an alias, in which case resolution jumps to the
// alias target and continues in that subtree. Resolution stops at the first
// segment that fails to match; the unconsumed tail comes back as leftover
// arguments for the deepest matched command. When nothing matches, Resolve
// yields the hidden-root pseudo-command.
func (r *Registry) Resolve(path []string) (*CommandSpec, []string) {
	current := r.root
	for i, segment := range path {
		if current == r.root {
			if spec, ok := r.commands[segment]; ok {
				current = spec
				continue
			}
			if alias, ok := r.aliases[segment]; ok {
				current = r.Lookup(alias.Target)
				continue
			}
			return current, path[i:]
		}
		if sub := current.findSubCommand(segment); sub != nil {
			current = sub
			continue
		}
		return current, path[i:]
	}
	return current, nil
}

// visibleAliases returns the alias table in listing order, hidden entries
// filtered out.
func (r *Registry) visibleAliases() []*Alias {
	var aliases []*Alias
	for _, alias := range r.aliases {
		if !alias.Hidden {
			aliases = append(aliases, alias)
		}
	}
	slices.SortFunc(aliases, func(a, b *Alias) int {
		return compareListing(a.Name, b.Name)
	})
	return aliases
}

// topLevelNames returns every resolvable top-level name, commands and aliases
// alike. Used for near-miss suggestions.
func (r *Registry) topLevelNames() []string {
	names := make([]string, 0, len(r.commands)+len(r.aliases))
	for name := range r.commands {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// visibleChildren returns a spec's children in listing order, hidden entries
// filtered out.
func visibleChildren(spec *CommandSpec) []*CommandSpec {
	var children []*CommandSpec
	for _, sub := range spec.SubCommands {
		if !sub.Hidden {
			children = append(children, sub)
		}
	}
	slices.SortFunc(children, func(a, b *CommandSpec) int {
		return compareListing(a.Name, b.Name)
	})
	return children
}

// compareListing orders names lexicographically, except help and version
// always sort last, in that fixed order.
func compareListing(a, b string) int {
	if ra, rb := listingRank(a), listingRank(b); ra != rb {
		return cmp.Compare(ra, rb)
	}
	return cmp.Compare(a, b)
}

func listingRank(name string) int {
	switch name {
	case "help":
		return 1
	case "version":
		return 2
	default:
		return 0
	}
}
