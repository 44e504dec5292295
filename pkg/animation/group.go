package animation

import (
	stderrors "errors"

	"github.com/go-drift/motion/pkg/errors"
)

// Group aggregates the completion of its members. Grouping never changes a
// member's own timing or lifetime: each member keeps its delay and duration,
// and a cancelled member does not stop its siblings.
//
// The group completes exactly once, when every member is terminal. Its
// completion reports finished=true only if every member finished normally.
// A group with no members completes as soon as it starts.
//
// A member's own completion callback runs before the group counts it, so
// members added to the group from inside that callback are counted before
// the group can complete. Members added while the group is being cancelled
// are started and then cancelled by the same teardown.
type Group struct {
	lifecycle

	members     []Animation
	outstanding int
	finished    bool
	cancelling  bool
}

var _ Animation = (*Group)(nil)

// NewGroup returns a Pending group over members. Members must be Pending
// and not already belong to a group.
func NewGroup(members []Animation, onComplete func(finished bool)) (*Group, error) {
	g := &Group{lifecycle: lifecycle{onComplete: onComplete}}
	for _, m := range members {
		if err := g.Add(m); err != nil {
			g.release()
			return nil, err
		}
	}
	return g, nil
}

// release detaches all members so they can join another group.
func (g *Group) release() {
	for _, m := range g.members {
		m.base().owner = nil
	}
	g.members = nil
}

// Members returns a copy of the group's members in insertion order.
func (g *Group) Members() []Animation {
	return append([]Animation(nil), g.members...)
}

// Outstanding returns the number of started members that have not yet
// reached a terminal state.
func (g *Group) Outstanding() int { return g.outstanding }

// Add appends a to the group. If the group is already running, a is started
// immediately and counted toward the group's completion; a start failure
// is returned and a counts as not finished.
func (g *Group) Add(a Animation) error {
	const op = "animation.Group.Add"
	if a == nil {
		return errors.Configuration(op, errors.ErrMissingTarget)
	}
	if g.state.IsTerminal() {
		return errors.State(op, errors.ErrTerminal)
	}
	l := a.base()
	if l.owner != nil || g.isSelfOrAncestor(l) {
		return errors.State(op, errors.ErrAlreadyOwned)
	}
	if err := checkStartable(op, a.State()); err != nil {
		return err
	}

	l.owner = g
	g.members = append(g.members, a)
	if g.state != Running {
		return nil
	}
	g.outstanding++
	if err := a.Start(); err != nil {
		abandon(a)
		return err
	}
	return nil
}

func (g *Group) isSelfOrAncestor(l *lifecycle) bool {
	for p := g; p != nil; p = p.owner {
		if &p.lifecycle == l {
			return true
		}
	}
	return false
}

// Start starts every member. The outstanding count is armed before any
// member starts, so members that end synchronously cannot complete the
// group early. Member start failures are joined and returned; each failed
// member counts as not finished.
func (g *Group) Start() error {
	const op = "animation.Group.Start"
	if err := checkStartable(op, g.state); err != nil {
		return err
	}
	g.state = Running
	g.finished = true
	n := len(g.members)
	g.outstanding = n
	if n == 0 {
		g.finish(Completed)
		return nil
	}

	var errs []error
	for _, m := range g.members[:n] {
		if g.state.IsTerminal() {
			break
		}
		wasTerminal := m.State().IsTerminal()
		if err := m.Start(); err != nil {
			errs = append(errs, err)
			if wasTerminal {
				// Ended before the group started, so it never reported in.
				g.memberDone(m.State() == Completed)
			} else {
				abandon(m)
			}
		}
	}
	return stderrors.Join(errs...)
}

// Cancel cancels every member that has not finished, then ends the group
// with finished=false.
func (g *Group) Cancel() error {
	const op = "animation.Group.Cancel"
	if err := checkCancellable(op, g.state); err != nil {
		return err
	}
	if g.cancelling {
		return errors.State(op, errors.ErrTerminal)
	}
	g.cancelling = true
	defer func() {
		g.cancelling = false
		g.finish(Cancelled)
	}()

	// Index loop: members may be added while earlier ones are cancelled.
	for i := 0; i < len(g.members); i++ {
		m := g.members[i]
		switch {
		case m.State() == Pending:
			abandon(m)
		case m.State().IsActive():
			_ = m.Cancel()
		}
	}
	return nil
}

// memberDone is called once for each member as it reaches a terminal state.
func (g *Group) memberDone(finished bool) {
	if g.state != Running {
		return
	}
	g.outstanding--
	if !finished {
		g.finished = false
	}
	if g.outstanding == 0 && !g.cancelling {
		g.finishWith(Completed, g.finished)
	}
}
