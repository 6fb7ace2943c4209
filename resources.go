package cli

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed resources/strings.yaml
var defaultStrings []byte

// Resources is an opaque string provider keyed by symbolic dotted paths such
// as "status.connecting". A missing key falls back to the key itself so a
// lookup bug never swallows output entirely.
type Resources struct {
	table map[string]string
}

// DefaultResources loads the embedded string table.
func DefaultResources() *Resources {
	res, err := LoadResources(defaultStrings)
	if err != nil {
		// The embedded table is covered by tests; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("cli: embedded string resources: %v", err))
	}
	return res
}

// LoadResources parses a YAML document of nested string tables into a flat
// dotted-key lookup.
func LoadResources(data []byte) (*Resources, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse string resources: %w", err)
	}
	table := make(map[string]string)
	flattenStrings("", raw, table)
	return &Resources{table: table}, nil
}

func flattenStrings(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenStrings(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

// Get returns the string registered under the dotted key, or the key itself
// when absent.
func (r *Resources) Get(key string) string {
	if v, ok := r.table[key]; ok {
		return v
	}
	return key
}
