// Package errors defines how a switch reports trouble.
//
// There are three channels. Toggling a switch from inside its own
// checked-changed listener panics with an [*Error] of kind
// [KindReentrancy]. A style that cannot be drawn is returned to the caller
// wrapping [ErrInvalidStyle]. A layout that leaves the knob no room to move
// is not fatal and goes to the process-wide [ErrorHandler] through [Report].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

var (
	ErrReentrantToggle    = stderrors.New("should not switch the state inside the checked-changed listener")
	ErrInvalidStyle       = stderrors.New("invalid switch style")
	ErrDegenerateGeometry = stderrors.New("degenerate switch geometry")
)

// ErrorKind groups errors by what went wrong.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfig
	KindReentrancy
	KindRender
	KindPanic
)

var kindNames = map[ErrorKind]string{
	KindConfig:     "config",
	KindReentrancy: "reentrancy",
	KindRender:     "render",
	KindPanic:      "panic",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is a failure attributed to a named switch operation such as
// "switchbutton.SetSize".
type Error struct {
	Op         string
	Kind       ErrorKind
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *Error) Error() string {
	return e.Op + " [" + e.Kind.String() + "]: " + fmt.Sprint(e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Reentrant is the value a switch panics with when op is called from inside
// its own change notification.
func Reentrant(op string) *Error {
	e := &Error{Op: op, Kind: KindReentrancy, Err: ErrReentrantToggle}
	e.StackTrace = CaptureStack()
	e.Timestamp = time.Now()
	return e
}

// InvalidStyle formats a style problem so that it matches ErrInvalidStyle.
func InvalidStyle(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidStyle}, args...)...)
}

// PanicError is a panic caught by Recover.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ErrorHandler is where reported errors and recovered panics end up.
type ErrorHandler interface {
	HandleError(err *Error)
	HandlePanic(err *PanicError)
}
