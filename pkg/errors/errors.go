// Package errors provides structured error handling for colorring.
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
	// KindConfig indicates invalid or unreadable configuration.
	KindConfig
	// KindRender indicates a failed frame, either a panic while drawing or
	// an image that could not be written.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error represents a structured colorring error.
type Error struct {
	// Op is the operation that failed (e.g., "segment.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the configuration file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError is the Err of a KindRender error raised by a panic.
type PanicError struct {
	// Value is the value passed to panic().
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors passed to Report.
type ErrorHandler interface {
	HandleError(err *Error)
}

// Wrap returns err wrapped as an *Error for op, or nil if err is nil.
// An err that is already an *Error is returned unchanged.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}
