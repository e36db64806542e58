package filecheck

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/vertti/touchcheck/pkg/check"
	"github.com/vertti/touchcheck/pkg/rules"
)

// PresenceCheck verifies that every path in a list exists.
type PresenceCheck struct {
	Title string   // section title
	Paths []string // paths relative to FS root, reported in order
	FS    afero.Fs // injected for testing
}

// Run tests every path, including those after a missing one.
func (c *PresenceCheck) Run() check.Result {
	result := check.Result{Name: c.Title}

	for _, p := range c.Paths {
		result.Record(p, Exists(c.FS, p))
	}

	result.Settle()
	if !result.OK() {
		result.Err = fmt.Errorf("missing files: %v", result.Failed())
	}
	return result
}

// ContentCheck verifies that one file satisfies a table of content rules.
type ContentCheck struct {
	Title string      // section title
	Path  string      // file to read, relative to FS root
	Rules rules.Table // evaluated in order, all of them
	FS    afero.Fs    // injected for testing
}

// Run fails immediately if the file is absent or unreadable, otherwise it
// evaluates and reports every rule.
func (c *ContentCheck) Run() check.Result {
	result := check.Result{Name: c.Title}

	if !Exists(c.FS, c.Path) {
		return result.Failf("file not found: %s", c.Path)
	}

	content, err := ReadText(c.FS, c.Path)
	if err != nil {
		return result.Fail(fmt.Sprintf("cannot read file: %s", c.Path), err)
	}

	for _, o := range c.Rules.Evaluate(content) {
		result.Record(o.Label, o.OK)
	}

	return result.Settle()
}
