// Package prompt asks yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// Confirm writes question to w and reads one line from r. It returns true
// for "y" or "yes" in any case; any other answer, or end of input, is false.
func Confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(w, "%s (y/n): ", question); err != nil {
		return false, eris.Wrap(err, "failed to write prompt")
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, eris.Wrap(err, "failed to read answer")
	}
	if err == io.EOF && line == "" {
		// Closed stdin: keep the report on its own line.
		_, _ = fmt.Fprintln(w)
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
