// Package buildcheck invokes the project's build tool to confirm that the
// firmware compiles.
package buildcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/vertti/touchcheck/pkg/check"
	"github.com/vertti/touchcheck/pkg/version"
)

// DefaultTool is the ESP-IDF front-end used when no tool is configured.
const DefaultTool = "idf.py"

// Check cleans and builds the project with an external build tool.
type Check struct {
	Tool       []string         // tool and leading args, e.g. ["idf.py", "-B", "build-s3"]
	MinVersion *version.Version // minimum tool version (inclusive), nil to skip
	Timeout    time.Duration    // limit for the whole invocation, 0 = none
	Runner     Runner           // injected for testing
	Progress   io.Writer        // receives "Cleaning..." style progress lines
	Log        zerolog.Logger
}

// SplitTool splits a build tool command line using shell quoting rules.
func SplitTool(s string) ([]string, error) {
	parts, err := shlex.Split(s)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid build tool %q", s)
	}
	if len(parts) == 0 {
		return nil, eris.New("build tool must not be empty")
	}
	return parts, nil
}

// stepError is a failed tool invocation with its captured diagnostics.
type stepError struct {
	step   string
	output string
	err    error
}

func (e *stepError) Error() string { return fmt.Sprintf("%s: %v", e.step, e.err) }
func (e *stepError) Unwrap() error { return e.err }

// Run executes the build check. It honors ctx cancellation.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{Name: "Test build"}

	tool := c.Tool
	if len(tool) == 0 {
		tool = []string{DefaultTool}
	}

	path, err := c.Runner.LookPath(tool[0])
	if err != nil {
		return result.Fail(fmt.Sprintf("build tool not found in PATH: %s", tool[0]), err)
	}
	result.AddDetailf("tool: %s", path)
	c.Log.Debug().Str("path", path).Msg("resolved build tool")

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	if c.MinVersion != nil {
		if err := c.checkVersion(ctx, tool, &result); err != nil {
			return result
		}
	}

	c.progress("Cleaning previous build...")
	if _, err := c.runStep(ctx, tool, "clean"); err != nil {
		return c.fail(&result, "Clean failed:", err)
	}

	c.progress("Building...")
	if _, err := c.runStep(ctx, tool, "build"); err != nil {
		return c.fail(&result, "Build failed:", err)
	}

	result.Pass("Build succeeded!")
	result.Status = check.StatusOK
	return result
}

// runStep runs one tool subcommand, converting launch faults, non-zero exits
// and timeouts into a *stepError carrying the captured output.
func (c *Check) runStep(ctx context.Context, tool []string, step string) (string, error) {
	args := append(append([]string{}, tool[1:]...), step)
	start := time.Now()
	stdout, stderr, err := c.Runner.RunCommandContext(ctx, tool[0], args...)
	c.Log.Debug().
		Str("step", step).
		Strs("args", args).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("build tool finished")

	if err == nil {
		return stdout, nil
	}

	output := strings.TrimSpace(stderr)
	if output == "" {
		output = strings.TrimSpace(stdout)
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		err = fmt.Errorf("timed out after %s", c.Timeout)
	case errors.Is(ctx.Err(), context.Canceled):
		err = fmt.Errorf("interrupted")
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = fmt.Errorf("exit status %d", exitErr.ExitCode())
		}
	}
	return stdout, &stepError{step: step, output: output, err: err}
}

func (c *Check) checkVersion(ctx context.Context, tool []string, result *check.Result) error {
	out, err := c.runStep(ctx, tool, "--version")
	if err != nil {
		c.fail(result, "Version check failed:", err)
		return err
	}

	v, err := version.Extract(out)
	if err != nil {
		result.Failf("could not parse build tool version: %v", err)
		return err
	}
	result.AddDetailf("version: %s", v)

	if !v.AtLeast(*c.MinVersion) {
		err := fmt.Errorf("build tool version %s below minimum %s", v, c.MinVersion)
		result.Fail(fmt.Sprintf("build tool version %s < minimum %s", v, c.MinVersion), err)
		return err
	}
	return nil
}

func (c *Check) fail(result *check.Result, label string, err error) check.Result {
	result.Fail(label, err)
	var se *stepError
	if errors.As(err, &se) {
		if se.output != "" {
			result.AddDetail(se.output)
		}
		result.AddDetailf("%s: %v", se.step, se.err)
	} else {
		result.AddDetail(err.Error())
	}
	return *result
}

func (c *Check) progress(msg string) {
	if c.Progress != nil {
		_, _ = fmt.Fprintln(c.Progress, msg)
	}
}
