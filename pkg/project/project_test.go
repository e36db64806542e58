package project

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fsys, f, []byte("x"), 0o644))
	}
	return fsys
}

func TestIsRoot(t *testing.T) {
	fsys := newFS(t, "/work/fw/CMakeLists.txt")

	assert.True(t, IsRoot(fsys, "/work/fw"))
	assert.False(t, IsRoot(fsys, "/work"))
}

func TestFindRoot(t *testing.T) {
	fsys := newFS(t,
		"/work/fw/CMakeLists.txt",
		"/work/fw/main/CMakeLists.txt",
		"/work/fw/main/boards/common/button.cc",
	)

	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"at root", "/work/fw", "/work/fw"},
		{"inside component", "/work/fw/main", "/work/fw"},
		{"deep", "/work/fw/main/boards/common", "/work/fw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(fsys, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	fsys := newFS(t, "/work/other/readme.md")

	_, err := FindRoot(fsys, "/work/other")
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestFindRoot_Relative(t *testing.T) {
	_, err := FindRoot(afero.NewMemMapFs(), "fw")
	assert.Error(t, err)
}
