package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the destination of Report and returns the
// handler it replaces. Nil restores a LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Report stamps err with the current time, unless it already has one, and
// passes it to the installed handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h.HandleError(err)
}

// RecoverRender must be deferred directly around a draw call:
//
//	defer errors.RecoverRender("progress.Draw")
//
// A panic is reported as a KindRender error wrapping a *PanicError and the
// caller returns normally, dropping the frame.
func RecoverRender(op string) {
	r := recover()
	if r == nil {
		return
	}
	Report(&Error{
		Op:         op,
		Kind:       KindRender,
		Err:        &PanicError{Value: r},
		StackTrace: stack(3),
	})
}

// stack formats the calling goroutine's frames, skipping the innermost skip.
func stack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
