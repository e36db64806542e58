package check

// Checker is implemented by all check types.
// Each check validates one section of the checklist
// and returns a Result indicating success or failure.
//
// Implementations:
//   - depcheck.Check: verifies dependency manifests
//   - filecheck.PresenceCheck: verifies expected paths exist
//   - filecheck.ContentCheck: verifies a file contains expected text
type Checker interface {
	Run() Result
}
