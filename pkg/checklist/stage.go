package checklist

// Stage is a state of the checklist driver. Stages advance strictly in
// declaration order; a failure jumps straight to Done.
type Stage int

const (
	CheckingEnvironment Stage = iota
	CheckingDependencies
	CheckingFiles
	CheckingIntegration
	CheckingConfig
	AwaitingBuildConfirmation
	InvokingBuild
	Done
)

var stageNames = [...]string{
	"CheckingEnvironment",
	"CheckingDependencies",
	"CheckingFiles",
	"CheckingIntegration",
	"CheckingConfig",
	"AwaitingBuildConfirmation",
	"InvokingBuild",
	"Done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}
