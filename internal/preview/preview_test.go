package preview

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/scene"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

const doc = `
version: v1
name: demo
properties:
  - {name: opacity, value: 0}
  - {name: tint, value: "#000000"}
animations:
  - {property: opacity, to: 1, duration: 1s}
  - {property: tint, to: "#ffffff", duration: 500ms, space: linear}
`

func newModel(t *testing.T) (Model, *motiontest.FakeClock) {
	t.Helper()
	clk := motiontest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })

	sc, err := scene.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	m, err := New(sc, 60)
	if err != nil {
		t.Fatal(err)
	}
	return m, clk
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestPreviewRunsToCompletion(t *testing.T) {
	m, clk := newModel(t)

	clk.Advance(500 * time.Millisecond)
	m = tick(m)
	if v, _ := m.store.Get("opacity"); v != 0.5 {
		t.Errorf("opacity after 500ms = %v", v)
	}
	if done, _ := m.Done(); done {
		t.Fatal("done too early")
	}

	clk.Advance(500 * time.Millisecond)
	m = tick(m)
	done, finished := m.Done()
	if !done || !finished {
		t.Errorf("expected finished run, got done=%v finished=%v", done, finished)
	}
	if !strings.Contains(m.View(), "finished") {
		t.Errorf("view should report completion:\n%s", m.View())
	}
}

func TestPreviewMemberCancelled(t *testing.T) {
	m, clk := newModel(t)
	clk.Advance(100 * time.Millisecond)
	m = tick(m)

	// tint is the second animation in the scene
	if err := m.root.Members()[1].Cancel(); err != nil {
		t.Fatalf("cancel tint: %v", err)
	}
	clk.Advance(time.Second)
	m = tick(m)

	if m.root.State() != animation.Completed {
		t.Fatalf("root state = %v, want completed", m.root.State())
	}
	if done, finished := m.Done(); !done || finished {
		t.Errorf("done=%v finished=%v, want done and not finished", done, finished)
	}
	if !strings.Contains(m.View(), "some animations cancelled") {
		t.Errorf("view should report the cancelled member:\n%s", m.View())
	}
}

func TestPreviewCancelAndRestart(t *testing.T) {
	m, clk := newModel(t)
	clk.Advance(100 * time.Millisecond)
	m = tick(m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = tick(next.(Model))
	if done, finished := m.Done(); !done || finished {
		t.Errorf("cancel: done=%v finished=%v", done, finished)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if done, _ := m.Done(); done {
		t.Error("restart should clear the done flag")
	}
	if v, _ := m.store.Get("opacity"); v != 0.0 {
		t.Errorf("restart should reset values, opacity=%v", v)
	}
}

func TestPreviewQuit(t *testing.T) {
	m, _ := newModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestNewRejectsBadFPS(t *testing.T) {
	sc, _ := scene.Parse([]byte(doc))
	for _, fps := range []float64{0, -1, 3e9, math.NaN()} {
		if _, err := New(sc, fps); err == nil {
			t.Errorf("expected error for fps %v", fps)
		}
	}
}

func TestScalarRanges(t *testing.T) {
	sc, _ := scene.Parse([]byte(doc))
	r := scalarRanges(sc)
	if got := r["opacity"]; got != (span{0, 1}) {
		t.Errorf("opacity range = %+v", got)
	}
	if _, ok := r["tint"]; ok {
		t.Error("colors should not get a scalar range")
	}
	if f := (span{2, 2}).fraction(2); f != 1 {
		t.Errorf("degenerate span fraction = %v", f)
	}
}

func TestRenderBar(t *testing.T) {
	bar := renderBar(0.5, 10)
	if strings.Count(bar, "█") != 5 || strings.Count(bar, "░") != 5 {
		t.Errorf("unexpected bar %q", bar)
	}
	if strings.Count(renderBar(2, 4), "█") != 4 {
		t.Error("overshoot should clamp to full width")
	}
}
