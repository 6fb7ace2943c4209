package cli

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/mfridman/xflag"
)

// Option declares a single named flag. Every option has a mandatory long form
// (written --long on the command line) and an optional single-character short
// form (written -s). Boolean options take no value; all others do.
type Option struct {
	// Short is the optional single-character form, without the leading dash.
	Short string

	// Long is the required long form, without the leading dashes. Unique
	// within a merged schema.
	Long string

	// Description is shown in help output. Embedded line breaks continue on
	// subsequent lines aligned to the description column.
	Description string

	// Boolean marks an option that takes no value.
	Boolean bool

	// Default is the resolved value when the option is not set. A string
	// default is passed through Transform, if any, before storage.
	Default any

	// Transform converts the raw command-line token into the stored value.
	Transform func(raw string) (any, error)
}

// Schema is an ordered, immutable set of options declared by a command.
type Schema struct {
	options []Option
}

// NewSchema builds an option schema. Schema declarations are static; an
// invalid declaration (missing or duplicate long form, multi-character short
// form) is a programming error and panics.
func NewSchema(options ...Option) *Schema {
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if opt.Long == "" {
			panic("cli: option is missing a long form")
		}
		if _, ok := seen[opt.Long]; ok {
			panic(fmt.Sprintf("cli: duplicate option --%s", opt.Long))
		}
		seen[opt.Long] = struct{}{}
		if len(opt.Short) > 1 {
			panic(fmt.Sprintf("cli: short form -%s of --%s is not a single character", opt.Short, opt.Long))
		}
	}
	return &Schema{options: slices.Clone(options)}
}

// Options returns the declared options in order.
func (s *Schema) Options() []Option {
	if s == nil {
		return nil
	}
	return slices.Clone(s.options)
}

// Merge returns the union of two schemas. On a long-name collision the
// definition in other wins, keeping the receiver's position; options unique
// to other are appended in their declaration order.
func (s *Schema) Merge(other *Schema) *Schema {
	if other == nil {
		return s
	}
	if s == nil {
		return other
	}
	override := make(map[string]Option, len(other.options))
	for _, opt := range other.options {
		override[opt.Long] = opt
	}
	merged := make([]Option, 0, len(s.options)+len(other.options))
	for _, opt := range s.options {
		if o, ok := override[opt.Long]; ok {
			merged = append(merged, o)
			delete(override, opt.Long)
			continue
		}
		merged = append(merged, opt)
	}
	for _, opt := range other.options {
		if _, ok := override[opt.Long]; ok {
			merged = append(merged, opt)
		}
	}
	return &Schema{options: merged}
}

// Values holds the resolved option values for one invocation, keyed by long
// name. Unset options carry their defaults.
type Values map[string]any

// optionValue adapts one option to the flag.Value interface. The short and
// long forms register the same value, so setting either one updates both.
type optionValue struct {
	opt   Option
	value any
	set   bool
}

func (v *optionValue) String() string {
	if v == nil || v.value == nil {
		return ""
	}
	return fmt.Sprint(v.value)
}

func (v *optionValue) Set(raw string) error {
	switch {
	case v.opt.Boolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q for --%s", raw, v.opt.Long)
		}
		v.value = b
	case v.opt.Transform != nil:
		resolved, err := v.opt.Transform(raw)
		if err != nil {
			return fmt.Errorf("invalid value %q for --%s: %w", raw, v.opt.Long, err)
		}
		v.value = resolved
	default:
		v.value = raw
	}
	v.set = true
	return nil
}

// IsBoolFlag tells the flag package that boolean options take no value.
func (v *optionValue) IsBoolFlag() bool { return v.opt.Boolean }

// Parse checks args against the schema and returns the resolved values along
// with the leftover positional arguments. Flags may appear anywhere among
// positionals. A malformed, unknown or valueless flag yields an error the
// caller must surface as a user-facing message.
func (s *Schema) Parse(args []string) (Values, []string, error) {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.Usage = func() {}

	opts := s.Options()
	bound := make([]*optionValue, 0, len(opts))
	for _, opt := range opts {
		v := &optionValue{opt: opt}
		bound = append(bound, v)
		// Long names are unique by schema construction; guard the short
		// forms, which can still collide across a merge. First wins.
		if fset.Lookup(opt.Long) == nil {
			fset.Var(v, opt.Long, opt.Description)
		}
		if opt.Short != "" && fset.Lookup(opt.Short) == nil {
			fset.Var(v, opt.Short, opt.Description)
		}
	}
	if err := xflag.ParseToEnd(fset, args); err != nil {
		return nil, nil, err
	}

	values := make(Values, len(bound))
	for _, v := range bound {
		if v.set {
			values[v.opt.Long] = v.value
			continue
		}
		values[v.opt.Long] = resolveDefault(v.opt)
	}
	return values, fset.Args(), nil
}

// resolveDefault produces the stored value for an unset option. String
// defaults run through the option's transform so they land in the same shape
// as explicitly set values.
func resolveDefault(opt Option) any {
	if opt.Default == nil {
		if opt.Boolean {
			return false
		}
		return nil
	}
	if raw, ok := opt.Default.(string); ok && opt.Transform != nil {
		if resolved, err := opt.Transform(raw); err == nil {
			return resolved
		}
	}
	return opt.Default
}

// GlobalSchema returns the options shared by every command: help, version and
// the config file location.
func GlobalSchema(tool string) *Schema {
	return NewSchema(
		Option{Short: "h", Long: "help", Description: "show help", Boolean: true},
		Option{Short: "v", Long: "version", Description: "print version information", Boolean: true},
		Option{
			Short:       "c",
			Long:        "config",
			Description: "path to the configuration file",
			Default:     DefaultConfigPath(tool),
			Transform:   ExpandPath,
		},
	)
}
