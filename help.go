package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/tvanryk/cli/pkg/textutil"
)

const (
	// listGutter is the fixed padding between a name column and its
	// description.
	listGutter = 4

	// minListWidth is the floor for the subcommand/alias name column, wide
	// enough for the trailing version row.
	minListWidth = 7

	helpWidth = 80
)

// renderHelp produces the formatted help lines for one resolved command. It
// is a pure function over the registry context; the dispatcher owns writing
// the lines out.
func renderHelp(r *Registry, spec *CommandSpec) []string {
	root := spec == r.root

	var banner []string
	if root {
		banner = append(banner, r.name+" "+r.version)
	}
	if spec.Description != "" {
		banner = append(banner, textutil.Wrap(spec.Description, helpWidth)...)
	}

	blocks := [][]string{
		banner,
		renderFlagBlock(r, spec),
		renderSubcommandBlock(r, spec),
	}
	if root {
		blocks = append(blocks, renderAliasBlock(r, spec))
	}

	var lines []string
	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	return lines
}

// renderFlagBlock lists the command's effective options, short and long forms
// left-justified to the width of the longest long form plus the gutter. A
// description with embedded line breaks continues on subsequent lines aligned
// to the description column.
func renderFlagBlock(r *Registry, spec *CommandSpec) []string {
	opts := spec.effectiveSchema(r.globals).Options()
	if len(opts) == 0 {
		return nil
	}
	slices.SortFunc(opts, func(a, b Option) int {
		return cmp.Compare(a.Long, b.Long)
	})

	maxLong := 0
	for _, opt := range opts {
		maxLong = max(maxLong, len(opt.Long))
	}
	// Rows without a short form reserve its room so long names line up.
	column := len("-x, --") + maxLong + listGutter

	lines := []string{r.resources.Get("flags")}
	for _, opt := range opts {
		label := "    --" + opt.Long
		if opt.Short != "" {
			label = "-" + opt.Short + ", --" + opt.Long
		}
		desc := textutil.Lines(opt.Description)
		first := ""
		if len(desc) > 0 {
			first = desc[0]
		}
		lines = append(lines, fmt.Sprintf("  %-*s%s", column, label, first))
		for _, cont := range desc[1:] {
			lines = append(lines, strings.Repeat(" ", column+2)+cont)
		}
	}
	return lines
}

// renderSubcommandBlock lists visible children in registry order, with the
// help and version rows always last. Rendered only when the command has at
// least one child.
func renderSubcommandBlock(r *Registry, spec *CommandSpec) []string {
	children := visibleChildren(spec)
	if len(children) == 0 {
		return nil
	}
	width := listWidth(r, spec)

	lines := []string{r.resources.Get("subcommands")}
	hasHelp, hasVersion := false, false
	for _, sub := range children {
		switch sub.Name {
		case "help":
			hasHelp = true
		case "version":
			hasVersion = true
		}
		lines = append(lines, fmt.Sprintf("  %-*s%s", width, sub.Name, firstLine(sub.Description)))
	}
	if !hasHelp {
		lines = append(lines, fmt.Sprintf("  %-*s%s", width, "help", r.resources.Get("help")))
	}
	if !hasVersion {
		lines = append(lines, fmt.Sprintf("  %-*s%s", width, "version", r.resources.Get("version")))
	}
	return lines
}

// renderAliasBlock lists visible aliases, root help only, sharing the
// subcommand column width.
func renderAliasBlock(r *Registry, spec *CommandSpec) []string {
	aliases := r.visibleAliases()
	if len(aliases) == 0 {
		return nil
	}
	width := listWidth(r, spec)

	lines := []string{r.resources.Get("aliases")}
	for _, alias := range aliases {
		target := fmt.Sprintf(r.resources.Get("alias_for"), alias.Target)
		lines = append(lines, fmt.Sprintf("  %-*s%s", width, alias.Name, target))
	}
	return lines
}

// listWidth computes the shared name column for subcommand and alias rows:
// max(7, longest visible child or alias name) plus the gutter.
func listWidth(r *Registry, spec *CommandSpec) int {
	width := minListWidth
	for _, sub := range visibleChildren(spec) {
		width = max(width, len(sub.Name))
	}
	if spec == r.root {
		for _, alias := range r.visibleAliases() {
			width = max(width, len(alias.Name))
		}
	}
	return width + listGutter
}

func firstLine(text string) string {
	if lines := textutil.Lines(text); len(lines) > 0 {
		return lines[0]
	}
	return ""
}
