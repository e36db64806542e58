package testutil

import (
	"context"
	"strings"
)

// MockRunner is a test double for command runners.
type MockRunner struct {
	LookPathFunc          func(file string) (string, error)
	RunCommandContextFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc == nil {
		return "/usr/bin/" + file, nil
	}
	return m.LookPathFunc(file)
}

func (m *MockRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	if m.RunCommandContextFunc == nil {
		return "", "", nil
	}
	return m.RunCommandContextFunc(ctx, name, args...)
}

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
