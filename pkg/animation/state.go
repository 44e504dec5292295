package animation

import "fmt"

// State is the lifecycle position of an animation.
//
//	          Start()              delay elapsed
//	Pending ──────────► Delaying ──────────────► Running ──► Completed
//	   │     (delay 0)                              ▲
//	   └────────────────────────────────────────────┘
//
// Delaying and Running move to Cancelled on Cancel. Completed and Cancelled
// are terminal: a terminal animation writes nothing and cannot be restarted.
type State int

const (
	// Pending means the animation has been built but not started.
	Pending State = iota
	// Delaying means the animation has started and is waiting out its delay.
	Delaying
	// Running means the animation is writing values on every tick.
	Running
	// Completed means the animation reached its end value.
	Completed
	// Cancelled means the animation was stopped before reaching its end.
	Cancelled
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Delaying:
		return "delaying"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsTerminal reports whether s is Completed or Cancelled.
func (s State) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether s is Delaying or Running.
func (s State) IsActive() bool {
	return s == Delaying || s == Running
}
