package dispatch

// State of the dispatcher.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE       = State(0) // idle
	STATE_AWAITING   = State(1) // awaiting operand
	STATE_EVALUATING = State(2) // evaluating
	STATE_REPORTED   = State(3) // reported
	STATE_REJECTED   = State(4) // rejected
)
