// Package errors provides structured error handling for the motion engine.
//
// Every error returned by the engine is an [*AnimationError] whose Kind places it
// in one of three categories:
//
//   - [KindConfiguration]: a construction call was given invalid parameters.
//   - [KindState]: an operation was called in a lifecycle state that forbids it.
//   - [KindInterpolation]: the endpoints of an animation cannot be interpolated.
//
// Use [IsKind] or the standard errors.Is with the exported sentinels to inspect them.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfiguration indicates invalid construction parameters.
	KindConfiguration
	// KindState indicates an operation that is illegal in the current lifecycle state.
	KindState
	// KindInterpolation indicates endpoints that cannot be interpolated together.
	KindInterpolation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindState:
		return "state"
	case KindInterpolation:
		return "interpolation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Configuration causes.
var (
	ErrNegativeDuration = stderrors.New("duration must not be negative")
	ErrNegativeDelay    = stderrors.New("delay must not be negative")
	ErrMissingEndValue  = stderrors.New("end value is required")
	ErrMissingTarget    = stderrors.New("target getter and setter are required")
	ErrMissingScheduler = stderrors.New("scheduler is required")
	ErrUnsupportedType  = stderrors.New("value type is not interpolatable")
	ErrNegativeDelta    = stderrors.New("tick delta must not be negative")
)

// State causes.
var (
	ErrAlreadyStarted = stderrors.New("animation already started")
	ErrNotStarted     = stderrors.New("animation not started")
	ErrTerminal       = stderrors.New("animation already completed or cancelled")
	ErrAlreadyOwned   = stderrors.New("animation already belongs to a group")
	ErrReentrantTick  = stderrors.New("tick delivered while another tick is in progress")
	ErrSubmitted      = stderrors.New("animation already handed to the compositor")
)

// ErrTypeMismatch is the interpolation cause for endpoints of different types.
var ErrTypeMismatch = stderrors.New("from and to values have different types")

// AnimationError represents a structured error raised by the engine.
type AnimationError struct {
	// Op is the operation that failed (e.g., "animation.Property.Start").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AnimationError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AnimationError) Unwrap() error {
	return e.Err
}

// Configuration returns a KindConfiguration error for op.
func Configuration(op string, err error) *AnimationError {
	return newError(op, KindConfiguration, err)
}

// State returns a KindState error for op.
func State(op string, err error) *AnimationError {
	return newError(op, KindState, err)
}

// Interpolation returns a KindInterpolation error for op.
func Interpolation(op string, err error) *AnimationError {
	return newError(op, KindInterpolation, err)
}

func newError(op string, kind ErrorKind, err error) *AnimationError {
	return &AnimationError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// IsKind reports whether any error in err's chain is an AnimationError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *AnimationError
	if !stderrors.As(err, &ae) {
		return false
	}
	return ae.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Scheduler.Tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by drivers of the engine.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *AnimationError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
