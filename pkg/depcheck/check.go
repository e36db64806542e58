// Package depcheck verifies that component manifests reference the packages a
// component needs.
package depcheck

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/vertti/touchcheck/pkg/check"
	"github.com/vertti/touchcheck/pkg/filecheck"
	"github.com/vertti/touchcheck/pkg/manifest"
	"github.com/vertti/touchcheck/pkg/rules"
)

// Manifest pairs a manifest path with the rule its content must satisfy.
type Manifest struct {
	Path string
	Rule rules.Rule
}

// Check verifies a sequence of manifests. It stops at the first manifest that
// is missing or fails its rule.
type Check struct {
	Title     string
	Manifests []Manifest
	FS        afero.Fs // injected for testing
}

// Run executes the dependency check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: c.Title}

	for _, m := range c.Manifests {
		if !filecheck.Exists(c.FS, m.Path) {
			return result.Failf("file not found: %s", m.Path)
		}

		content, err := filecheck.ReadText(c.FS, m.Path)
		if err != nil {
			return result.Fail(fmt.Sprintf("cannot read file: %s", m.Path), err)
		}

		if !m.Rule.Match(content) {
			return result.Fail(m.Rule.Label, fmt.Errorf("%s: %s", m.Path, m.Rule.Label))
		}
		result.Pass(m.Rule.Label)

		// Declared names are informational; the substring rule decides.
		if parsed, err := manifest.Parse([]byte(content)); err != nil {
			result.AddDetailf("%s: could not parse manifest", m.Path)
		} else if names := parsed.DependencyNames(); len(names) > 0 {
			result.AddDetailf("%s declares: %s", m.Path, strings.Join(names, ", "))
		}
	}

	result.Status = check.StatusOK
	return result
}
