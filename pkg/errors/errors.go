// Package errors provides structured error handling for arbor.
//
// Two failure modes exist. Invariant violations, such as an identifier missing
// from a tree that must contain it, are programming errors and panic with an
// *InvariantError. Everything else is an ordinary error value.
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
	// KindInvariant indicates a broken tree invariant.
	KindInvariant
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindPass indicates a failure inside a tree pass (layout, paint, events, accessibility).
	KindPass
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindPanic:
		return "panic"
	case KindPass:
		return "pass"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ArborError represents a structured error reported by the framework.
type ArborError struct {
	// Op is the operation that failed (e.g., "widget.Tree.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ArborError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ArborError) Unwrap() error {
	return e.Err
}

// InvariantError is the panic payload raised when an accessor is handed an
// identifier that the tree must contain but does not, or when the widget and
// state trees have diverged.
type InvariantError struct {
	// Op is the accessor that detected the violation (e.g., "get_pair_mut").
	Op string
	// ID is the raw identifier involved.
	ID uint64
	// Detail describes what was missing.
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s (id #%d)", e.Op, e.Detail, e.ID)
}

// Invariant panics with an *InvariantError. It never returns.
func Invariant(op string, id uint64, detail string) {
	panic(&InvariantError{Op: op, ID: id, Detail: detail})
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widget.Tree.DispatchPointer").
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

// Unwrap exposes the panic value when it is itself an error, so that
// errors.As can find an *InvariantError inside a recovered panic.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ArborError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
