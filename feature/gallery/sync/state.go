package sync

// State is the orchestrator's position in the pipeline. A run moves strictly
// forward: Idle, Listing, Parsing, Reconciling, then one terminal state.
type State int

const (
	StateIdle State = iota
	StateListing
	StateParsing
	StateReconciling
	StateSucceeded
	StatePartiallySucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListing:
		return "listing"
	case StateParsing:
		return "parsing"
	case StateReconciling:
		return "reconciling"
	case StateSucceeded:
		return "succeeded"
	case StatePartiallySucceeded:
		return "partially_succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StatePartiallySucceeded || s == StateFailed
}

// Outcome is the classified result of a run, mirrored into the operation log
// so a polling UI and the HTTP caller see the same story.
type Outcome struct {
	State   State  `json:"state"`
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
