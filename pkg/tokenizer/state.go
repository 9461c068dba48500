package tokenizer

// Status classifies the result of running a state function.
type Status uint8

const (
	// StatusSuspended means the machine needs the next character before it
	// can make progress; the continuation is held in State.
	StatusSuspended Status = iota

	// StatusOk means a bounded unit of work succeeded.
	StatusOk

	// StatusNok means the current trial failed; the nearest Attempt rolls
	// back to its snapshot. Nok never escapes to the caller as an error.
	StatusNok
)

// StateFunc is one step of a construct's parser: inspect the current
// character on the tokenizer and return what happens next.
type StateFunc func(*Tokenizer) State

// State is the inspectable result of a step: done, failed, or suspended
// with a resumable continuation.
type State struct {
	status Status
	next   StateFunc
}

// Ok is the succeeded state.
var Ok = State{status: StatusOk}

// Nok is the failed state.
var Nok = State{status: StatusNok}

// Next suspends with fn as the continuation to run on the next character.
func Next(fn StateFunc) State {
	return State{status: StatusSuspended, next: fn}
}

// Status returns the state's status.
func (s State) Status() Status {
	return s.status
}

// Resume returns the suspended continuation; nil unless suspended.
func (s State) Resume() StateFunc {
	return s.next
}
