package animation

// Animation is the start/cancel contract shared by every animation kind,
// including groups. Only types in this package implement it.
type Animation interface {
	// Start moves a Pending animation to Delaying or Running.
	Start() error
	// Cancel stops an active animation and fires its completion with
	// finished=false before returning.
	Cancel() error
	// State returns the current lifecycle state.
	State() State

	base() *lifecycle
}

// lifecycle holds the state and completion bookkeeping common to all kinds.
type lifecycle struct {
	state      State
	onComplete func(finished bool)
	owner      *Group
}

func (l *lifecycle) base() *lifecycle { return l }

// State returns the current lifecycle state.
func (l *lifecycle) State() State { return l.state }

// finish commits a terminal transition, reporting finished only for
// Completed.
func (l *lifecycle) finish(state State) {
	l.finishWith(state, state == Completed)
}

// finishWith commits a terminal transition, then runs the animation's own
// completion callback followed by its group's accounting. Each runs at most
// once. The group is notified even if the callback panics.
func (l *lifecycle) finishWith(state State, finished bool) {
	if l.state.IsTerminal() {
		return
	}
	l.state = state

	cb := l.onComplete
	l.onComplete = nil
	if owner := l.owner; owner != nil {
		defer owner.memberDone(finished)
	}
	if cb != nil {
		cb(finished)
	}
}

// abandon terminates an animation that never left Pending.
func abandon(a Animation) {
	if a.State() == Pending {
		a.base().finish(Cancelled)
	}
}
