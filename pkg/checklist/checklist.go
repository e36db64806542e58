// Package checklist drives the sequence of build-configuration checks for a
// firmware component and reports the outcome.
package checklist

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/vertti/touchcheck/pkg/check"
	"github.com/vertti/touchcheck/pkg/depcheck"
	"github.com/vertti/touchcheck/pkg/filecheck"
	"github.com/vertti/touchcheck/pkg/output"
	"github.com/vertti/touchcheck/pkg/project"
	"github.com/vertti/touchcheck/pkg/rules"
)

// ErrCheckFailed is returned when any stage fails.
var ErrCheckFailed = errors.New("check failed")

// Checklist is the declarative description of what to verify.
type Checklist struct {
	Title           string
	Component       string
	Manifests       []depcheck.Manifest
	Files           []string
	IntegrationFile string
	Integration     rules.Table
	ConfigFile      string
	Config          rules.Table
}

// BuildMode selects how the optional build stage is entered.
type BuildMode int

const (
	BuildAsk    BuildMode = iota // prompt the user
	BuildAlways                  // build without prompting
	BuildNever                   // stop after the static checks
)

// Builder runs the build stage.
type Builder interface {
	Run(ctx context.Context) check.Result
}

// Runner executes a Checklist against a project tree.
type Runner struct {
	Checklist Checklist
	FS        afero.Fs  // rooted at the project directory
	Out       io.Writer // report destination
	Mode      BuildMode
	Confirm   func(question string) (bool, error)
	Builder   Builder
	Hint      func() (string, bool) // suggests a project root when the precondition fails
	Log       zerolog.Logger
	OnStage   func(Stage) // observes stage transitions
}

// Run executes every stage in order and returns ErrCheckFailed (wrapped) if
// any of them fails.
func (r *Runner) Run(ctx context.Context) error {
	cl := r.Checklist
	output.Banner(r.Out, cl.Title)
	output.Line(r.Out, "")

	r.enter(CheckingEnvironment)
	if !project.IsRoot(r.FS, ".") {
		output.Line(r.Out, "Error: run this tool from the project root")
		if r.Hint != nil {
			if root, ok := r.Hint(); ok {
				output.Line(r.Out, "hint: project root found at %s", root)
			}
		}
		return r.finish(fmt.Errorf("%w: %s not found", ErrCheckFailed, project.Descriptor))
	}

	stages := []struct {
		stage   Stage
		checker check.Checker
		failure string
	}{
		{
			CheckingDependencies,
			&depcheck.Check{
				Title:     fmt.Sprintf("Checking %s dependencies", cl.Component),
				Manifests: cl.Manifests,
				FS:        r.FS,
			},
			"Dependency check failed",
		},
		{
			CheckingFiles,
			&filecheck.PresenceCheck{
				Title: fmt.Sprintf("Checking %s files", cl.Component),
				Paths: cl.Files,
				FS:    r.FS,
			},
			"File check failed",
		},
		{
			CheckingIntegration,
			&filecheck.ContentCheck{
				Title: fmt.Sprintf("Checking %s integration", cl.Component),
				Path:  cl.IntegrationFile,
				Rules: cl.Integration,
				FS:    r.FS,
			},
			"Integration check failed",
		},
		{
			CheckingConfig,
			&filecheck.ContentCheck{
				Title: "Checking configuration header",
				Path:  cl.ConfigFile,
				Rules: cl.Config,
				FS:    r.FS,
			},
			"Config check failed",
		},
	}

	for i, s := range stages {
		r.enter(s.stage)
		result := s.checker.Run()
		if i == 0 {
			// The banner's trailing blank line already separates the first section.
			output.Line(r.Out, "=== %s ===\n", result.Name)
		} else {
			output.Section(r.Out, result.Name)
		}
		output.PrintResult(r.Out, result)

		if !result.OK() {
			r.Log.Debug().Err(result.Err).Str("stage", s.stage.String()).Msg("stage failed")
			output.Line(r.Out, "\n%s", s.failure)
			return r.finish(fmt.Errorf("%w: %s", ErrCheckFailed, s.failure))
		}
	}

	output.Line(r.Out, "\n=== All checks passed! ===")
	output.Line(r.Out, "\n%s component is correctly configured in the build system", cl.Component)

	r.enter(AwaitingBuildConfirmation)
	build, err := r.shouldBuild()
	if err != nil {
		r.Log.Warn().Err(err).Msg("could not read confirmation, skipping build")
	}
	if !build {
		return r.finish(nil)
	}

	r.enter(InvokingBuild)
	return r.finish(r.runBuild(ctx))
}

// runBuild is the build action proper; whether to run it is decided by the
// caller.
func (r *Runner) runBuild(ctx context.Context) error {
	output.Section(r.Out, "Test build")
	result := r.Builder.Run(ctx)
	output.PrintResult(r.Out, result)

	if !result.OK() {
		r.Log.Debug().Err(result.Err).Msg("build failed")
		output.Line(r.Out, "\nBuild test failed, check the errors above")
		return fmt.Errorf("%w: build", ErrCheckFailed)
	}
	output.Line(r.Out, "\nBuild test passed!")
	return nil
}

func (r *Runner) shouldBuild() (bool, error) {
	switch r.Mode {
	case BuildAlways:
		return true, nil
	case BuildNever:
		return false, nil
	}
	if r.Confirm == nil {
		return false, nil
	}
	output.Line(r.Out, "")
	return r.Confirm("Run a test build?")
}

func (r *Runner) enter(s Stage) {
	r.Log.Debug().Str("stage", s.String()).Msg("entering stage")
	if r.OnStage != nil {
		r.OnStage(s)
	}
}

func (r *Runner) finish(err error) error {
	r.enter(Done)
	return err
}
