package batch

// State is the lifecycle position of a Runner.
type State int

// States in execution order. Completed and Failed are terminal.
const (
	StateExtracting State = iota
	StateValidating
	StateTransforming
	StateAggregating
	StateReporting
	StateCompleted
	StateFailed
)

// Stage names used in logs, spans and metrics.
const (
	StageExtract   = "extract"
	StageValidate  = "validate"
	StageTransform = "transform"
	StageAggregate = "aggregate"
	StageReport    = "report"
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateExtracting:
		return "extracting"
	case StateValidating:
		return "validating"
	case StateTransforming:
		return "transforming"
	case StateAggregating:
		return "aggregating"
	case StateReporting:
		return "reporting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stage returns the stage executed in state s, or "" for terminal states.
func (s State) Stage() string {
	switch s {
	case StateExtracting:
		return StageExtract
	case StateValidating:
		return StageValidate
	case StateTransforming:
		return StageTransform
	case StateAggregating:
		return StageAggregate
	case StateReporting:
		return StageReport
	default:
		return ""
	}
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}
