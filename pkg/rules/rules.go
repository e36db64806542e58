// Package rules models expected file content as ordered tables of labelled
// predicates, so that a checklist grows by adding data rather than code.
package rules

import "strings"

// Rule is a labelled predicate over the text of a file.
type Rule struct {
	Label string
	Match func(content string) bool
}

// Outcome is the result of evaluating one Rule.
type Outcome struct {
	Label string
	OK    bool
}

// Table is an ordered list of rules.
type Table []Rule

// Contains returns a rule that passes when content contains substr.
func Contains(label, substr string) Rule {
	return Rule{
		Label: label,
		Match: func(content string) bool { return strings.Contains(content, substr) },
	}
}

// ContainsAll returns a rule that passes when content contains every substring.
func ContainsAll(label string, substrs ...string) Rule {
	return Rule{
		Label: label,
		Match: func(content string) bool {
			for _, s := range substrs {
				if !strings.Contains(content, s) {
					return false
				}
			}
			return true
		},
	}
}

// Defines returns a rule that passes when content has a "#define NAME" line.
// Matching is by substring, so "#define NAME_SUFFIX" also satisfies NAME.
func Defines(macro string) Rule {
	return Contains(macro+" defined", "#define "+macro)
}

// Evaluate runs every rule against content. All rules are evaluated, in order,
// even after one fails.
func (t Table) Evaluate(content string) []Outcome {
	out := make([]Outcome, 0, len(t))
	for _, r := range t {
		out = append(out, Outcome{Label: r.Label, OK: r.Match(content)})
	}
	return out
}

// AllOK reports whether every outcome passed.
func AllOK(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if !o.OK {
			return false
		}
	}
	return true
}
