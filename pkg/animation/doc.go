// Package animation drives property animations on a single timeline.
//
// # Core Components
//
//   - [Scheduler]: owns the timeline. The host advances it once per frame
//     with [Scheduler.Tick] (or [Scheduler.Step] to read the wall clock).
//
//   - [Property]: writes interpolated values to a [Target] on every tick,
//     shaped by a [curve.Curve].
//
//   - [Delegated]: hands interpolation off to a host [Compositor] and only
//     tracks lifecycle and completion.
//
//   - [Group]: aggregates member completion into a single callback. Groups
//     nest.
//
//   - [Tween]: evaluates a curve and interpolator without scheduling.
//
// # Basic Usage
//
//	s := animation.NewScheduler()
//	opacity := 0.0
//	fade, err := animation.NewProperty(s, animation.Config[float64]{
//	    Target:   animation.Target[float64]{Get: func() float64 { return opacity }, Set: func(v float64) { opacity = v }},
//	    To:       1,
//	    Duration: 300 * time.Millisecond,
//	    Curve:    curve.EaseOutCubic,
//	})
//	if err != nil {
//	    return err
//	}
//	fade.Start()
//
//	// Once per frame
//	s.Tick(frameDelta)
//
// Every animation moves through the [State] machine exactly once, and its
// completion callback fires exactly once: with finished=true when it
// reaches its end value, or finished=false when it is cancelled.
package animation
