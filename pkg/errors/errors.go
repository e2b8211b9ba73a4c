// Package errors provides structured error handling for mtrl widgets.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindCreate indicates a widget construction failure.
	KindCreate
	// KindDOM indicates a failed DOM operation.
	KindDOM
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindDOM:
		return "dom"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ComponentError represents a structured error raised by a widget operation.
type ComponentError struct {
	// Op is the operation that failed (e.g., "tooltip.SetTarget").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
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

// CreateError represents a failure while building a widget.
type CreateError struct {
	// Widget is the widget name (e.g. "card").
	Widget string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error. For recovered panics holding an error it
	// is that error.
	Err error
	// StackTrace contains the call stack for recovered panics.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CreateError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("Failed to create %s: %v", e.Widget, e.Err)
	case e.Recovered != nil:
		return fmt.Sprintf("Failed to create %s: %v", e.Widget, e.Recovered)
	default:
		return fmt.Sprintf("Failed to create %s: unknown error", e.Widget)
	}
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by widgets.
type ErrorHandler interface {
	// HandleError is called when an operation fails.
	HandleError(err *ComponentError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleCreateError is called when a widget cannot be created.
	HandleCreateError(err *CreateError)
}
