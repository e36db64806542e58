package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/touchcheck/pkg/buildcheck"
	"github.com/vertti/touchcheck/pkg/checklist"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	projectDir     string
	buildYes       bool
	noBuild        bool
	buildTool      string
	buildTimeout   time.Duration
	minToolVersion string
	noColor        bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "touchcheck",
	Short: "Verify the touch button component is wired into the firmware build",
	Long: "touchcheck checks that the touch_button component is configured in an ESP-IDF project:\n" +
		"dependency manifests, expected source files, board integration and config macros.\n" +
		"When every check passes it can run a test build with idf.py.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runChecklist,
}

func init() {
	rootCmd.Flags().StringVarP(&projectDir, "dir", "C", ".", "project root to check")
	rootCmd.Flags().BoolVarP(&buildYes, "yes", "y", false, "run the test build without prompting")
	rootCmd.Flags().BoolVar(&noBuild, "no-build", false, "skip the test build prompt")
	rootCmd.Flags().StringVar(&buildTool, "build-tool", buildcheck.DefaultTool, "build tool command line")
	rootCmd.Flags().DurationVar(&buildTimeout, "build-timeout", 0, "limit for the test build (0 = none)")
	rootCmd.Flags().StringVar(&minToolVersion, "min-tool-version", "", "minimum build tool version (e.g., 5.3)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Check failures are already explained in the report.
		if !errors.Is(err, checklist.ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
