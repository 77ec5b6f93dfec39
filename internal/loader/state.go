package loader

import "github.com/rshade/appbrowser/internal/application"

// State is the explicit view of the loader's flags.
type State int

const (
	// StateIdle is the initial state, and the state after a non-empty page.
	StateIdle State = iota
	// StateLoading means a request is in flight.
	StateLoading
	// StateErrored means the most recent request failed.
	StateErrored
	// StateExhausted means an empty page was observed. It is terminal.
	StateExhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateErrored:
		return "errored"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the loader's observable state.
type Snapshot struct {
	Records        []application.Record
	LastLoadedPage int
	IsLoading      bool
	HasError       bool
	HasMore        bool
	Err            error
}

// State derives the explicit state from the snapshot's flags.
// Loading wins over everything, then exhaustion, then error.
func (s Snapshot) State() State {
	switch {
	case s.IsLoading:
		return StateLoading
	case !s.HasMore:
		return StateExhausted
	case s.HasError:
		return StateErrored
	default:
		return StateIdle
	}
}

// NextPage is the page a "load more" action should request.
func (s Snapshot) NextPage() int {
	return s.LastLoadedPage + 1
}
