package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vertti/touchcheck/pkg/buildcheck"
	"github.com/vertti/touchcheck/pkg/checklist"
	"github.com/vertti/touchcheck/pkg/logging"
	"github.com/vertti/touchcheck/pkg/output"
	"github.com/vertti/touchcheck/pkg/project"
	"github.com/vertti/touchcheck/pkg/prompt"
)

// runChecklist wires the touch button checklist to the real filesystem,
// terminal and build tool. The returned error causes exit code 1.
func runChecklist(cmd *cobra.Command, _ []string) error {
	if err := requireAtMostOne(
		flagSet{"--yes", buildYes},
		flagSet{"--no-build", noBuild},
	); err != nil {
		return err
	}

	tool, err := buildcheck.SplitTool(buildTool)
	if err != nil {
		return err
	}

	minVersion, err := parseMinVersion(minToolVersion)
	if err != nil {
		return err
	}

	if noColor {
		output.DisableColor()
	}

	dir, err := filepath.Abs(projectDir)
	if err != nil {
		return fmt.Errorf("failed to resolve project directory: %w", err)
	}

	log := logging.New(cmd.ErrOrStderr(), verbose)
	log.Debug().Str("dir", dir).Strs("tool", tool).Msg("starting checklist")

	mode := checklist.BuildAsk
	switch {
	case buildYes:
		mode = checklist.BuildAlways
	case noBuild:
		mode = checklist.BuildNever
	}

	osFs := afero.NewOsFs()
	out := cmd.OutOrStdout()

	runner := &checklist.Runner{
		Checklist: checklist.TouchButton(),
		FS:        afero.NewBasePathFs(osFs, dir),
		Out:       out,
		Mode:      mode,
		Confirm: func(question string) (bool, error) {
			return prompt.Confirm(cmd.InOrStdin(), out, question)
		},
		Builder: &buildcheck.Check{
			Tool:       tool,
			MinVersion: minVersion,
			Timeout:    buildTimeout,
			Runner:     &buildcheck.RealRunner{Dir: dir},
			Progress:   out,
			Log:        log,
		},
		Hint: func() (string, bool) {
			root, err := project.FindRoot(osFs, dir)
			if err != nil || root == dir {
				return "", false
			}
			return root, true
		},
		Log: log,
	}

	return runner.Run(cmd.Context())
}
