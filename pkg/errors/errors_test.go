package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestAnimationErrorString(t *testing.T) {
	err := State("animation.Property.Cancel", ErrNotStarted)
	got := err.Error()
	want := "animation.Property.Cancel [state]: animation not started"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAnimationErrorUnwrap(t *testing.T) {
	err := Configuration("animation.NewProperty", ErrNegativeDuration)
	if !stderrors.Is(err, ErrNegativeDuration) {
		t.Error("expected errors.Is to find ErrNegativeDuration")
	}
	wrapped := fmt.Errorf("building scene: %w", err)
	if !stderrors.Is(wrapped, ErrNegativeDuration) {
		t.Error("expected errors.Is to see through fmt wrapping")
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{"configuration", Configuration("op", ErrMissingEndValue), KindConfiguration, true},
		{"state", State("op", ErrTerminal), KindState, true},
		{"interpolation", Interpolation("op", ErrTypeMismatch), KindInterpolation, true},
		{"wrong kind", State("op", ErrTerminal), KindConfiguration, false},
		{"wrapped", fmt.Errorf("ctx: %w", State("op", ErrTerminal)), KindState, true},
		{"plain", stderrors.New("boom"), KindState, false},
		{"nil", nil, KindState, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfiguration, "configuration"},
		{KindState, "state"},
		{KindInterpolation, "interpolation"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "animation.Scheduler.Tick"
	if got, want := err.Error(), "panic in animation.Scheduler.Tick: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *AnimationError
	handler := &testHandler{
		onError: func(err *AnimationError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&AnimationError{Op: "test.op", Kind: KindState, Err: ErrTerminal})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportErrWrapsForeignErrors(t *testing.T) {
	var captured []*AnimationError
	handler := &testHandler{
		onError: func(err *AnimationError) {
			captured = append(captured, err)
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportErr("scene.Load", stderrors.New("disk on fire"))
	ReportErr("scene.Load", Configuration("scene.Parse", ErrNegativeDelay))
	ReportErr("scene.Load", nil)

	if len(captured) != 2 {
		t.Fatalf("captured %d errors, want 2", len(captured))
	}
	if captured[0].Kind != KindUnknown || captured[0].Op != "scene.Load" {
		t.Errorf("foreign error reported as %s/%s", captured[0].Op, captured[0].Kind)
	}
	if captured[1].Kind != KindConfiguration || captured[1].Op != "scene.Parse" {
		t.Errorf("engine error reported as %s/%s", captured[1].Op, captured[1].Kind)
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(State("animation.Group.Add", ErrTerminal))
	h.HandlePanic(&PanicError{Op: "animation.Scheduler.Tick", Value: "boom", StackTrace: "frame"})

	out := buf.String()
	if !strings.Contains(out, "[motion error] animation.Group.Add: animation already completed or cancelled") {
		t.Errorf("unexpected error line in %q", out)
	}
	if !strings.Contains(out, "[motion panic] animation.Scheduler.Tick: boom") {
		t.Errorf("unexpected panic line in %q", out)
	}
	if strings.Contains(out, "Stack trace") {
		t.Error("non-verbose handler should not print stack traces")
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Value: "boom", StackTrace: "frame"})
	if !strings.Contains(buf.String(), "Stack trace:\nframe") {
		t.Errorf("verbose handler should print stack trace, got %q", buf.String())
	}
}

type testHandler struct {
	onError func(*AnimationError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *AnimationError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
