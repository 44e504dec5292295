// Package testing provides fakes for deterministic animation tests.
//
// # Quick Start
//
// Record every value an animation writes, then assert on the sequence:
//
//	func TestFade(t *testing.T) {
//	    s := animation.NewScheduler()
//	    rec := motiontest.NewRecorder(0.0)
//	    fade, _ := animation.NewProperty(s, animation.Config[float64]{
//	        Target:   rec.Target(),
//	        To:       1,
//	        Duration: time.Second,
//	    })
//	    fade.Start()
//	    s.Tick(500 * time.Millisecond)
//
//	    if got := rec.Last(); got != 0.5 {
//	        t.Errorf("expected 0.5, got %v", got)
//	    }
//	}
//
// # Clock Control
//
// Drive [animation.Scheduler.Step] from a fake clock:
//
//	clk := motiontest.NewFakeClock()
//	defer animation.SetClock(animation.SetClock(clk))
//	s.Step()
//	clk.Advance(16 * time.Millisecond)
//	s.Step()
//
// # Compositor
//
// [FakeCompositor] stands in for a host compositor when testing delegated
// animations; tests decide when each submitted animation ends.
package testing
