package templates

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the optional per-store manifest at the root of a template tree.
const ManifestFile = "languages.yaml"

// NamingStyle selects how the exercise file name is derived from a slug.
type NamingStyle string

const (
	// NamingPascal yields "TwoSum".
	NamingPascal NamingStyle = "pascal"

	// NamingCamel yields "twoSum".
	NamingCamel NamingStyle = "camel"

	// NamingSnake yields "two_sum".
	NamingSnake NamingStyle = "snake"
)

// TestCommand is the external test tool invocation for a language.
// Args may contain placeholder tokens.
type TestCommand struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// LanguageSpec holds the rendering and test settings of one language.
type LanguageSpec struct {
	// Name is the language directory name.
	Name string `yaml:"-"`

	// Snippet is the metadata source's language slug for the default code body.
	Snippet string `yaml:"snippet"`

	// Naming selects the exercise file naming style.
	Naming NamingStyle `yaml:"naming"`

	// Package enables a per-exercise package name (problem_NNNN).
	Package bool `yaml:"package"`

	// Outputs maps a template kind to its output file name pattern.
	Outputs map[string]string `yaml:"outputs"`

	// Test is the external test command.
	Test TestCommand `yaml:"test"`
}

// OutputName returns the output file name pattern for a template.
// Without a manifest entry, "exercise" becomes <name><ext> and any other
// kind becomes <name>.<kind><ext>.
func (l LanguageSpec) OutputName(t Template) string {
	if pattern, ok := l.Outputs[t.Kind]; ok && pattern != "" {
		return pattern
	}
	if t.Kind == "exercise" {
		return TokenFileName + t.Ext
	}
	return TokenFileName + "." + t.Kind + t.Ext
}

// parseManifest decodes a languages.yaml document.
func parseManifest(data []byte) (map[string]LanguageSpec, error) {
	specs := map[string]LanguageSpec{}
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	for name, spec := range specs {
		spec.Name = name
		switch spec.Naming {
		case "":
			spec.Naming = NamingPascal
		case NamingPascal, NamingCamel, NamingSnake:
		default:
			return nil, fmt.Errorf("language %s: unknown naming style %q", name, spec.Naming)
		}
		for kind, pattern := range spec.Outputs {
			if pattern != path.Base(pattern) || strings.Contains(pattern, "..") {
				return nil, fmt.Errorf("language %s: output %s must be a plain file name, got %q", name, kind, pattern)
			}
		}
		specs[name] = spec
	}
	return specs, nil
}

// defaultSpec is used for a language directory without a manifest entry.
func defaultSpec(name string) LanguageSpec {
	return LanguageSpec{
		Name:    name,
		Snippet: name,
		Naming:  NamingPascal,
	}
}
