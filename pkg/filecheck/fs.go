package filecheck

import (
	"os"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// ErrNotText is returned when a file is not valid UTF-8.
var ErrNotText = eris.New("not valid UTF-8 text")

// Exists reports whether path exists as a file or directory.
// Errors other than "not exist" count as absent.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// ReadText reads a whole file as UTF-8 text.
func ReadText(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", eris.Wrapf(os.ErrNotExist, "file not found: %s", path)
		}
		return "", eris.Wrapf(err, "failed to read %s", path)
	}
	if !utf8.Valid(data) {
		return "", eris.Wrapf(ErrNotText, "failed to read %s", path)
	}
	return string(data), nil
}
