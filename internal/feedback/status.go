// Package feedback holds the feedback dialog: a visibility gate and the
// submission controller that sends a draft to the collection endpoint.
//
// The package has no UI dependency. The terminal front-end drives it from its
// event loop; tests drive it directly with a fake Sender.
package feedback

// Status is the submission lifecycle of one controller.
type Status uint8

const (
	Idle Status = iota
	Sending
	Sent
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is the result of a finished attempt.
func (s Status) Terminal() bool {
	return s == Sent || s == Error
}
