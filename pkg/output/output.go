package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/touchcheck/pkg/check"
)

const (
	passMark = "✓"
	failMark = "✗"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// DisableColor turns off ANSI colors for the rest of the process.
func DisableColor() {
	green, red, dim, reset = "", "", "", ""
}

// Banner prints the report title.
func Banner(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "=== %s ===\n", title)
}

// Section prints a section header preceded and followed by a blank line.
func Section(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "\n=== %s ===\n\n", title)
}

// Line prints a plain line.
func Line(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// Item prints one pass/fail line.
func Item(w io.Writer, label string, ok bool) {
	if ok {
		_, _ = fmt.Fprintf(w, "%s%s%s %s\n", green, passMark, reset, label)
		return
	}
	_, _ = fmt.Fprintf(w, "%s%s%s %s\n", red, failMark, reset, label)
}

// PrintResult prints every item of a result followed by its details.
func PrintResult(w io.Writer, r check.Result) {
	for _, it := range r.Items {
		Item(w, it.Label, it.OK)
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s      %s%s\n", dim, d, reset)
	}
}
