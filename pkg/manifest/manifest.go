// Package manifest reads ESP-IDF component manifests (idf_component.yml).
package manifest

import (
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Manifest is the subset of idf_component.yml the checker reports on.
type Manifest struct {
	Version      string               `yaml:"version"`
	Description  string               `yaml:"description"`
	Dependencies map[string]yaml.Node `yaml:"dependencies"`
}

// Parse decodes manifest YAML. Dependency values may be a version string or a
// mapping (version, override_path, rules...); only the keys are interpreted.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrap(err, "failed to parse component manifest")
	}
	return &m, nil
}

// DependencyNames returns the declared dependency names, sorted.
func (m *Manifest) DependencyNames() []string {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declares reports whether name is a declared dependency key.
func (m *Manifest) Declares(name string) bool {
	_, ok := m.Dependencies[name]
	return ok
}
