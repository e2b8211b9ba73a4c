package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *ComponentError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// ReportCreateError sends a create error to the global handler.
func ReportCreateError(err *CreateError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleCreateError(err)
	}
}

// Recover is a helper for deferred panic recovery in callbacks that must not
// crash the event loop.
// Usage: defer errors.Recover("schedule.callback")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// Guard runs a widget factory. A returned error or a panic (typically a DOM
// exception raised by an enhancer) is reported and returned as a
// *CreateError, so construction either fully succeeds or fails as a whole.
func Guard[T any](widget string, build func() (T, error)) (result T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ce := &CreateError{
			Widget:     widget,
			Recovered:  r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		}
		if e, ok := r.(error); ok {
			ce.Err = e
		}
		ReportCreateError(ce)
		var zero T
		result, err = zero, ce
	}()

	result, err = build()
	if err != nil {
		ce := &CreateError{Widget: widget, Err: err, Timestamp: time.Now()}
		ReportCreateError(ce)
		var zero T
		return zero, ce
	}
	return result, nil
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
