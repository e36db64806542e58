package main

import (
	"fmt"
	"strings"

	"github.com/vertti/touchcheck/pkg/version"
)

// flagSet represents a flag that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// requireAtMostOne returns an error if more than one of the given flags is set.
func requireAtMostOne(flags ...flagSet) error {
	var set []string
	for _, f := range flags {
		if f.isSet {
			set = append(set, f.name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%s cannot be combined", strings.Join(set, " and "))
	}
	return nil
}

// parseMinVersion parses an optional --min-tool-version value.
func parseMinVersion(s string) (*version.Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := version.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --min-tool-version: %w", err)
	}
	return &v, nil
}
