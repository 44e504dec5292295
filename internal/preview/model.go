// Package preview renders a scene live in the terminal, driving the
// scheduler from wall-clock time.
package preview

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/scene"
)

// TickMsg requests the next frame.
type TickMsg time.Time

// Model is the bubbletea model for a running scene.
type Model struct {
	scene    *scene.Scene
	interval time.Duration
	ranges   map[string]span

	sched *animation.Scheduler
	root  *animation.Group
	store *scene.Store

	frames   int
	outcome  *outcome
	done     bool
	finished bool
	err      error
	width    int
	quitting bool
}

// outcome receives the root group's completion. It lives behind a pointer
// because bubbletea copies the Model on every update.
type outcome struct {
	called   bool
	finished bool
}

// New builds sc and starts it. fps sets the redraw rate.
func New(sc *scene.Scene, fps float64) (Model, error) {
	interval := time.Duration(math.Round(float64(time.Second) / fps))
	if !(fps > 0) || interval <= 0 {
		return Model{}, fmt.Errorf("fps must be positive and at most 1e9, got %v", fps)
	}
	m := Model{
		scene:    sc,
		interval: interval,
		ranges:   scalarRanges(sc),
		width:    80,
	}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// restart rebuilds the scene on a fresh scheduler.
func (m *Model) restart() error {
	s := animation.NewScheduler()
	o := &outcome{}
	root, store, err := m.scene.Build(s, func(finished bool) {
		o.called, o.finished = true, finished
	})
	if err != nil {
		return err
	}
	m.sched, m.root, m.store, m.outcome = s, root, store, o
	m.frames, m.done, m.finished, m.err = 0, false, false, nil
	if err := root.Start(); err != nil {
		m.err = err
		errors.ReportErr("preview.Start", err)
	}
	// Record the reference time for the first frame.
	return s.Step()
}

// Done reports whether every animation in the scene has ended, and whether
// they all finished normally.
func (m Model) Done() (done, finished bool) { return m.done, m.finished }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		if m.root.State().IsActive() {
			_ = m.root.Cancel()
		}
		return m, tea.Quit

	case "r":
		if m.root.State().IsActive() {
			_ = m.root.Cancel()
		}
		if err := m.restart(); err != nil {
			m.err = err
		}
		return m, nil

	case "c":
		if m.root.State().IsActive() {
			if err := m.root.Cancel(); err != nil {
				m.err = err
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.step(); err != nil {
		m.err = err
		errors.ReportErr("preview.Step", err)
	}
	m.frames++
	if m.root.State().IsTerminal() && !m.done {
		m.done = true
		m.finished = m.outcome.called && m.outcome.finished
	}
	return m, m.tickCmd()
}

// step advances the scheduler, converting a panic in scene code into an
// error so the terminal is restored cleanly.
func (m Model) step() (err error) {
	defer errors.RecoverWithCallback("preview.Step", func(r any) {
		err = fmt.Errorf("panic during step: %v", r)
	})
	return m.sched.Step()
}
