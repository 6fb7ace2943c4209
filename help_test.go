package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHelpRegistry builds the fixture from the rendering tests: commands alpha
// and beta, alias a -> alpha.
func newHelpRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry("tool", "1.2.3", "tool does things")
	alpha := &CommandSpec{
		Name:        "alpha",
		Description: "First",
		Exec:        func(ctx context.Context, s *State) error { return nil },
	}
	beta := &CommandSpec{
		Name:        "beta",
		Description: "Second",
		Options: NewSchema(
			Option{Long: "name", Description: "device name", Default: "x"},
		),
		Exec: func(ctx context.Context, s *State) error { return nil },
	}
	require.NoError(t, r.Register(alpha))
	require.NoError(t, r.Register(beta))
	require.NoError(t, r.RegisterAlias("a", "alpha", false))
	return r
}

func TestRenderHelpRoot(t *testing.T) {
	t.Parallel()

	r := newHelpRegistry(t)
	lines := renderHelp(r, r.Root())

	expected := []string{
		"tool 1.2.3",
		"tool does things",
		"",
		"FLAGS",
		"  -c, --config     path to the configuration file",
		"  -h, --help       show help",
		"  -v, --version    print version information",
		"",
		"SUBCOMMANDS",
		"  alpha      First",
		"  beta       Second",
		"  help       Show help for a command",
		"  version    Print version information",
		"",
		"ALIASES",
		"  a          alias for 'alpha'",
	}
	assert.Equal(t, expected, lines)
}

func TestRenderHelpCommand(t *testing.T) {
	t.Parallel()

	t.Run("non-root has no banner and no aliases", func(t *testing.T) {
		t.Parallel()
		r := newHelpRegistry(t)
		lines := renderHelp(r, r.Lookup("beta"))

		expected := []string{
			"Second",
			"",
			"FLAGS",
			"  -c, --config     path to the configuration file",
			"  -h, --help       show help",
			"      --name       device name",
			"  -v, --version    print version information",
		}
		assert.Equal(t, expected, lines)
	})
	t.Run("multi-line descriptions align to the description column", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry("tool", "1.0.0", "")
		gamma := &CommandSpec{
			Name:        "gamma",
			Description: "Third",
			Options: NewSchema(
				Option{Long: "mode", Description: "primary mode\nsecondary detail"},
			),
		}
		require.NoError(t, r.Register(gamma))

		lines := renderHelp(r, gamma)
		require.Contains(t, lines, "      --mode       primary mode")
		idx := indexOf(lines, "      --mode       primary mode")
		require.Less(t, idx+1, len(lines))
		assert.Equal(t, strings.Repeat(" ", 19)+"secondary detail", lines[idx+1])
	})
	t.Run("subcommand block lists children with trailing pseudo-rows", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry("tool", "1.0.0", "")
		group := &CommandSpec{
			Name:        "group",
			Description: "A group",
			SubCommands: []*CommandSpec{
				{Name: "zz", Description: "Last alphabetically"},
				{Name: "aa", Description: "First alphabetically"},
				{Name: "shy", Description: "Not listed", Hidden: true},
			},
		}
		require.NoError(t, r.Register(group))

		lines := renderHelp(r, group)
		joined := strings.Join(lines, "\n")
		assert.NotContains(t, joined, "shy")
		assert.NotContains(t, joined, "ALIASES")

		expected := []string{
			"SUBCOMMANDS",
			"  aa         First alphabetically",
			"  zz         Last alphabetically",
			"  help       Show help for a command",
			"  version    Print version information",
		}
		assert.Equal(t, expected, lines[len(lines)-len(expected):])
	})
	t.Run("no alias block without aliases", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry("tool", "1.0.0", "bare tool")
		require.NoError(t, r.Register(&CommandSpec{Name: "only", Description: "Only"}))

		lines := renderHelp(r, r.Root())
		assert.NotContains(t, strings.Join(lines, "\n"), "ALIASES")
	})
	t.Run("hidden aliases excluded but column width counts visible ones", func(t *testing.T) {
		t.Parallel()
		r := newHelpRegistry(t)
		require.NoError(t, r.RegisterAlias("quiet", "beta", true))

		lines := renderHelp(r, r.Root())
		joined := strings.Join(lines, "\n")
		assert.Contains(t, joined, "alias for 'alpha'")
		assert.NotContains(t, joined, "quiet")
	})
}

func indexOf(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}
