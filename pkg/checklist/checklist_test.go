package checklist

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/touchcheck/pkg/check"
	"github.com/vertti/touchcheck/pkg/output"
	"github.com/vertti/touchcheck/pkg/testutil"
)

func TestMain(m *testing.M) {
	output.DisableColor()
	os.Exit(m.Run())
}

// spyFs records every path that is stat'ed or opened.
type spyFs struct {
	afero.Fs
	mu      sync.Mutex
	touched []string
}

func (s *spyFs) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = append(s.touched, name)
}

func (s *spyFs) Stat(name string) (os.FileInfo, error) {
	s.record(name)
	return s.Fs.Stat(name)
}

func (s *spyFs) Open(name string) (afero.File, error) {
	s.record(name)
	return s.Fs.Open(name)
}

func (s *spyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	s.record(name)
	return s.Fs.OpenFile(name, flag, perm)
}

func (s *spyFs) touchedAny(paths ...string) bool {
	for _, t := range s.touched {
		for _, p := range paths {
			if t == p {
				return true
			}
		}
	}
	return false
}

type stubBuilder struct {
	calls  int
	result check.Result
}

func (b *stubBuilder) Run(context.Context) check.Result {
	b.calls++
	return b.result
}

type harness struct {
	runner  *Runner
	out     *bytes.Buffer
	fs      *spyFs
	builder *stubBuilder
	stages  []Stage
	asked   int
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	mem := afero.NewMemMapFs()
	testutil.WriteProject(t, mem, files)

	h := &harness{
		out:     &bytes.Buffer{},
		fs:      &spyFs{Fs: mem},
		builder: &stubBuilder{result: check.Result{Status: check.StatusOK, Items: []check.Item{{Label: "Build succeeded!", OK: true}}}},
	}
	h.runner = &Runner{
		Checklist: TouchButton(),
		FS:        h.fs,
		Out:       h.out,
		Builder:   h.builder,
		Confirm: func(string) (bool, error) {
			h.asked++
			return false, nil
		},
		OnStage: func(s Stage) { h.stages = append(h.stages, s) },
	}
	return h
}

func TestRun_AllPass(t *testing.T) {
	h := newHarness(t, testutil.TouchProject())

	err := h.runner.Run(context.Background())

	require.NoError(t, err)
	out := h.out.String()
	assert.Contains(t, out, "=== All checks passed! ===")
	assert.Contains(t, out, "touch_button component is correctly configured in the build system")
	assert.NotContains(t, out, "✗")
	assert.Equal(t, 1, h.asked)
	assert.Equal(t, 0, h.builder.calls, "declined build must not run")
	assert.Equal(t, []Stage{
		CheckingEnvironment,
		CheckingDependencies,
		CheckingFiles,
		CheckingIntegration,
		CheckingConfig,
		AwaitingBuildConfirmation,
		Done,
	}, h.stages)
}

func TestRun_ReportLayout(t *testing.T) {
	h := newHarness(t, testutil.TouchProject())
	h.runner.Mode = BuildNever

	require.NoError(t, h.runner.Run(context.Background()))

	lines := strings.Split(h.out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "=== Touch Button Build Configuration Check ===", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "=== Checking touch_button dependencies ===", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Contains(t, lines[4], "main/idf_component.yml declares espressif/touch_button")

	out := h.out.String()
	for _, header := range []string{
		"\n\n=== Checking touch_button files ===\n\n",
		"\n\n=== Checking touch_button integration ===\n\n",
		"\n\n=== Checking configuration header ===\n\n",
	} {
		assert.Contains(t, out, header)
	}
	assert.Equal(t, 8, strings.Count(out, "TouchButton member declared")+strings.Count(out, "touch channel constant")+
		strings.Count(out, "includes touch_button.h")+strings.Count(out, "touch sensor initialization"))
}

func TestRun_WrongDirectory(t *testing.T) {
	h := newHarness(t, testutil.Without(testutil.TouchProject(), "CMakeLists.txt"))
	h.runner.Hint = func() (string, bool) { return "/work/fw", true }

	err := h.runner.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCheckFailed))
	assert.Contains(t, h.out.String(), "Error: run this tool from the project root")
	assert.Contains(t, h.out.String(), "hint: project root found at /work/fw")
	assert.NotContains(t, h.out.String(), "dependencies")
	assert.Equal(t, []string{"CMakeLists.txt"}, h.fs.touched, "no other file may be read")
	assert.Equal(t, []Stage{CheckingEnvironment, Done}, h.stages)
}

func TestRun_HaltsOnFirstFailure(t *testing.T) {
	full := testutil.TouchProject()

	tests := []struct {
		name       string
		files      map[string]string
		failure    string
		lastStage  Stage
		untouched  []string
		notPrinted []string
	}{
		{
			name: "component manifest lacks sensor",
			files: testutil.With(full, "components/touch_button/idf_component.yml",
				"dependencies:\n  espressif/button: \"^4.0.0\"\n"),
			failure:   "Dependency check failed",
			lastStage: CheckingDependencies,
			untouched: []string{
				"components/touch_button/touch_button.h",
				"main/boards/bread-compact-wifi/compact_wifi_board.cc",
				"main/boards/bread-compact-wifi/config.h",
			},
			notPrinted: []string{"files ===", "integration ===", "configuration header ==="},
		},
		{
			name:       "missing component source",
			files:      testutil.Without(full, "components/touch_button/touch_button.c"),
			failure:    "File check failed",
			lastStage:  CheckingFiles,
			notPrinted: []string{"integration ===", "configuration header ==="},
		},
		{
			name: "board source lacks init call",
			files: testutil.With(full, boardSource,
				strings.ReplaceAll(testutil.TouchBoardSource, "InitializeTouchSensor", "InitTouch")),
			failure:    "Integration check failed",
			lastStage:  CheckingIntegration,
			notPrinted: []string{"configuration header ==="},
		},
		{
			name: "config lacks macro",
			files: testutil.With(full, boardConfig,
				strings.ReplaceAll(testutil.TouchConfigHeader, "#define TOUCH_CHANNEL_BELLY", "// TOUCH_CHANNEL_BELLY")),
			failure:   "Config check failed",
			lastStage: CheckingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.files)
			h.runner.Mode = BuildAlways

			err := h.runner.Run(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCheckFailed))
			out := h.out.String()
			assert.Contains(t, out, "\n"+tt.failure+"\n")
			assert.NotContains(t, out, "All checks passed")
			for _, p := range tt.notPrinted {
				assert.NotContains(t, out, p)
			}
			assert.False(t, h.fs.touchedAny(tt.untouched...), "later stages must not read files")
			assert.Equal(t, tt.lastStage, h.stages[len(h.stages)-2])
			assert.Equal(t, Done, h.stages[len(h.stages)-1])
			assert.Equal(t, 0, h.builder.calls)
			assert.Equal(t, 0, h.asked)
		})
	}
}

func TestRun_FileCheckReportsAllMissing(t *testing.T) {
	files := testutil.Without(testutil.TouchProject(),
		"components/touch_button/touch_button.h",
		"components/touch_button/CMakeLists.txt",
		"main/boards/common/touch_button.cc",
	)
	h := newHarness(t, files)

	require.Error(t, h.runner.Run(context.Background()))

	out := h.out.String()
	for _, p := range TouchButton().Files {
		assert.Contains(t, out, p)
	}
	assert.Contains(t, out, "✗ components/touch_button/touch_button.h")
	assert.Contains(t, out, "✗ components/touch_button/CMakeLists.txt")
	assert.Contains(t, out, "✗ main/boards/common/touch_button.cc")
}

func TestRun_BuildConfirmed(t *testing.T) {
	h := newHarness(t, testutil.TouchProject())
	h.runner.Confirm = func(q string) (bool, error) {
		assert.Equal(t, "Run a test build?", q)
		return true, nil
	}

	err := h.runner.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, h.builder.calls)
	assert.Contains(t, h.out.String(), "\n=== Test build ===\n\n✓ Build succeeded!\n")
	assert.Contains(t, h.out.String(), "\nBuild test passed!\n")
	assert.Equal(t, InvokingBuild, h.stages[len(h.stages)-2])
}

func TestRun_BuildFails(t *testing.T) {
	h := newHarness(t, testutil.TouchProject())
	h.runner.Mode = BuildAlways
	h.builder.result = check.Result{
		Status:  check.StatusFail,
		Items:   []check.Item{{Label: "Build failed:"}},
		Details: []string{"touch_button.c:3: error"},
	}

	err := h.runner.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCheckFailed))
	assert.Equal(t, 0, h.asked)
	assert.Contains(t, h.out.String(), "✗ Build failed:")
	assert.Contains(t, h.out.String(), "touch_button.c:3: error")
	assert.Contains(t, h.out.String(), "Build test failed, check the errors above")
}

func TestRun_BuildNever(t *testing.T) {
	h := newHarness(t, testutil.TouchProject())
	h.runner.Mode = BuildNever

	require.NoError(t, h.runner.Run(context.Background()))
	assert.Equal(t, 0, h.asked)
	assert.Equal(t, 0, h.builder.calls)
}

func TestRun_ConfirmErrorSkipsBuild(t *testing.T) {
	h := newHarness(t, testutil.TouchProject())
	h.runner.Confirm = func(string) (bool, error) { return false, errors.New("stdin closed") }

	require.NoError(t, h.runner.Run(context.Background()))
	assert.Equal(t, 0, h.builder.calls)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "CheckingEnvironment", CheckingEnvironment.String())
	assert.Equal(t, "InvokingBuild", InvokingBuild.String())
	assert.Equal(t, "Done", Done.String())
	assert.Equal(t, "Unknown", Stage(42).String())
}
