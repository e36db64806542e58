package check

import (
	"fmt"
)

// Fail sets the result to failed status with a failed item line.
func (r *Result) Fail(label string, err error) Result {
	r.Status = StatusFail
	r.Items = append(r.Items, Item{Label: label})
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted item line.
func (r *Result) Failf(format string, args ...any) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Pass appends a passed item line.
func (r *Result) Pass(label string) *Result {
	r.Items = append(r.Items, Item{Label: label, OK: true})
	return r
}

// Record appends an item line with the given outcome.
// It does not change the status; use Settle once every item is recorded.
func (r *Result) Record(label string, ok bool) *Result {
	r.Items = append(r.Items, Item{Label: label, OK: ok})
	return r
}

// Settle sets the status from the recorded items: OK iff no item failed.
func (r *Result) Settle() Result {
	failed := r.Failed()
	if len(failed) == 0 {
		r.Status = StatusOK
		return *r
	}
	r.Status = StatusFail
	if r.Err == nil {
		r.Err = fmt.Errorf("%d of %d checks failed", len(failed), len(r.Items))
	}
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
