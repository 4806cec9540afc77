package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct{ h ErrorHandler }

var global atomic.Pointer[handlerBox]

func init() {
	global.Store(&handlerBox{h: &LogHandler{}})
}

// SetHandler replaces the process-wide handler and returns the old one.
// A nil h puts back a default LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return global.Swap(&handlerBox{h: h}).h
}

func currentHandler() ErrorHandler {
	return global.Load().h
}

// Report hands err to the current handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	currentHandler().HandleError(err)
}

// ReportPanic hands err to the current handler, stamping it if needed.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	currentHandler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recover must be deferred directly:
//
//	defer errors.Recover("switchplay.Update")
//
// It turns a panic into a reported PanicError, except for reentrancy
// panics, which keep unwinding.
func Recover(op string) {
	r := recover()
	switch v := r.(type) {
	case nil:
		return
	case *Error:
		if v.Kind == KindReentrancy {
			panic(v)
		}
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack(), Timestamp: time.Now()})
}

// CaptureStack formats up to 32 frames, starting at its caller.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(2, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		b.WriteString(f.Function)
		b.WriteString("\n\t")
		b.WriteString(f.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Line))
		b.WriteByte('\n')
	}
	return b.String()
}
