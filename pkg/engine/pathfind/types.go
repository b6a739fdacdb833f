package pathfind

import "errors"

// ErrParentCycle indicates the parent links of the grid loop back on themselves.
// A search never produces a cycle; seeing one means the grid was not reset
// between searches or was modified by hand.
var ErrParentCycle = errors.New("pathfind: parent links form a cycle")

// ErrBrokenChain indicates a parent chain that does not end at the start cell.
var ErrBrokenChain = errors.New("pathfind: parent chain does not reach the start cell")

// Result is the outcome of a completed search
type Result int

const (
	// NotFound means the open set ran dry (or the step cap was hit) before
	// the target was reached.
	NotFound Result = iota
	// Found means the target was reached and its parent chain is valid.
	Found
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Found:
		return "Found"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// State is the lifecycle stage of a PathFinder
type State int

const (
	StateInitialized State = iota
	StateRunning
	StateFound
	StateNotFound
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateFound:
		return "Found"
	case StateNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Done returns true for the two terminal states
func (s State) Done() bool {
	return s == StateFound || s == StateNotFound
}

// Options defines parameters for the search.
type Options struct {
	// MaxSteps caps the number of expansions. Zero means no cap.
	MaxSteps int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxSteps stops the search with NotFound after n expansions.
// The reference search has no cap; this is meant for large grids.
func WithMaxSteps(n int) Option {
	return func(options *Options) { options.MaxSteps = n }
}
