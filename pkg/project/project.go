// Package project locates the root of an ESP-IDF firmware project.
package project

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// Descriptor is the top-level build descriptor that marks a project root.
const Descriptor = "CMakeLists.txt"

// ErrNotFound is returned when no enclosing project root exists.
var ErrNotFound = eris.New("project root not found")

// IsRoot reports whether dir contains the top-level build descriptor.
func IsRoot(fsys afero.Fs, dir string) bool {
	_, err := fsys.Stat(filepath.Join(dir, Descriptor))
	return err == nil
}

// FindRoot walks up from startDir, which must be absolute, and returns the
// nearest directory that has both a build descriptor and a main/ component
// directory. Component directories carry their own CMakeLists.txt, so the
// descriptor alone does not identify a root.
func FindRoot(fsys afero.Fs, startDir string) (string, error) {
	if !filepath.IsAbs(startDir) {
		return "", eris.Errorf("start directory must be absolute: %s", startDir)
	}

	currentDir := filepath.Clean(startDir)
	for {
		if IsRoot(fsys, currentDir) {
			if ok, _ := afero.IsDir(fsys, filepath.Join(currentDir, "main")); ok {
				return currentDir, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}
