package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOption(t *testing.T) {
	t.Parallel()

	newState := func(values Values) *State {
		return &State{
			spec:   &CommandSpec{Name: "root", qualifiedName: "root"},
			values: values,
		}
	}

	t.Run("typed access", func(t *testing.T) {
		t.Parallel()
		s := newState(Values{"name": "y", "verbose": true, "count": 7})
		assert.Equal(t, "y", GetOption[string](s, "name"))
		assert.Equal(t, true, GetOption[bool](s, "verbose"))
		assert.Equal(t, 7, GetOption[int](s, "count"))
	})
	t.Run("nil value yields the zero value", func(t *testing.T) {
		t.Parallel()
		s := newState(Values{"name": nil})
		assert.Equal(t, "", GetOption[string](s, "name"))
	})
	t.Run("undeclared option panics", func(t *testing.T) {
		t.Parallel()
		s := newState(Values{})
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, r.(string), `option "missing" not declared for command "root"`)
		}()
		// Panic because the author asked for an option outside the merged schema.
		_ = GetOption[string](s, "missing")
	})
	t.Run("type mismatch panics", func(t *testing.T) {
		t.Parallel()
		s := newState(Values{"name": "y"})
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, r.(string), `type mismatch for option "name" in command "root"`)
		}()
		// Panic because the author asked for a registered option with the wrong type.
		_ = GetOption[int](s, "name")
	})
}
