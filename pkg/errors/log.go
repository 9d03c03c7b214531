package errors

import (
	"log"
	"os"
)

// LogHandler is an ErrorHandler that prints each error on one line,
// including its kind and config path.
type LogHandler struct {
	// Verbose adds the stack trace, when one was captured.
	Verbose bool
	// Logger receives the output. Nil logs to stderr.
	Logger *log.Logger
}

var stderrLogger = log.New(os.Stderr, "colorring: ", 0)

// HandleError logs err.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	l := h.Logger
	if l == nil {
		l = stderrLogger
	}
	l.Printf("%s error: %v", err.Kind, err)
	if h.Verbose && err.StackTrace != "" {
		l.Printf("stack trace:\n%s", err.StackTrace)
	}
}
