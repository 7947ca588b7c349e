package surface

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed placeholders.yaml
var placeholdersYAML []byte

type placeholderFile struct {
	Examples []string `yaml:"examples"`
}

// LoadPlaceholders returns the built-in example limiting beliefs.
func LoadPlaceholders() ([]string, error) {
	return ParsePlaceholders(placeholdersYAML)
}

// ParsePlaceholders decodes a YAML document with an "examples" list,
// dropping blank entries.
func ParsePlaceholders(data []byte) ([]string, error) {
	var f placeholderFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse placeholders: %w", err)
	}

	examples := make([]string, 0, len(f.Examples))
	for _, e := range f.Examples {
		if e = strings.TrimSpace(e); e != "" {
			examples = append(examples, e)
		}
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("parse placeholders: no examples")
	}
	return examples, nil
}

func pickPlaceholder(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	return examples[rand.IntN(len(examples))]
}
