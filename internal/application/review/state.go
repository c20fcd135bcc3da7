package review

import "imgcurate/internal/domain"

// Phase is the top-level state of a review session
type Phase int

const (
	PhaseReviewing Phase = iota
	PhaseExhausted
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseReviewing:
		return "reviewing"
	case PhaseExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// State is the snapshot a Session emits after every operation
type State struct {
	Phase     Phase
	Entry     domain.Entry // zero when exhausted
	Cursor    int
	Total     int    // Entries left in the queue, including those behind the cursor
	Remaining int    // Total - Cursor
	Path      string // Resolved file path; empty when missing or exhausted
	Missing   bool
	Counters  domain.Counters

	AutoReconcile bool
}

// Exhausted reports whether the queue has been fully reviewed
func (s State) Exhausted() bool {
	return s.Phase == PhaseExhausted
}

// Position returns the 1-based position of the current entry
func (s State) Position() int {
	return s.Cursor + 1
}
