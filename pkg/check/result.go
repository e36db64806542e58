package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Item is a single reported line of a check, e.g. one expected file or one
// expected substring.
type Item struct {
	Label string
	OK    bool
}

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // section title, e.g. "Checking touch_button files"
	Status  Status   // OK or FAIL
	Items   []Item   // one line per evaluated rule, in evaluation order
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Failed returns the labels of all failed items.
func (r Result) Failed() []string {
	var labels []string
	for _, it := range r.Items {
		if !it.OK {
			labels = append(labels, it.Label)
		}
	}
	return labels
}
