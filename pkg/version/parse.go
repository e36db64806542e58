// Package version parses tool versions such as "ESP-IDF v5.3.1" and compares
// them against a minimum.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a semantic version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// toolRegex matches a "v"-prefixed version, which is how ESP-IDF tools
// report themselves ("ESP-IDF v5.3.1-dirty").
var toolRegex = regexp.MustCompile(`\bv(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Parse parses a version string into a Version.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil || matches[0] != s {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}
	return fromMatches(matches), nil
}

// Extract finds the version in tool output. A "v"-prefixed number wins over a
// bare one, so "ESP-IDF 2024 build v5.3.1" yields 5.3.1.
func Extract(s string) (Version, error) {
	if matches := toolRegex.FindStringSubmatch(s); matches != nil {
		return fromMatches(matches), nil
	}
	if matches := versionRegex.FindStringSubmatch(s); matches != nil {
		return fromMatches(matches), nil
	}
	return Version{}, fmt.Errorf("no version found in: %q", strings.TrimSpace(s))
}

func fromMatches(matches []string) Version {
	major, _ := strconv.Atoi(matches[1])
	var minor, patch int
	if matches[2] != "" {
		minor, _ = strconv.Atoi(matches[2])
	}
	if matches[3] != "" {
		patch, _ = strconv.Atoi(matches[3])
	}
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	a := [3]int{v.Major, v.Minor, v.Patch}
	b := [3]int{other.Major, other.Minor, other.Patch}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// AtLeast returns true if v >= min.
func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}
