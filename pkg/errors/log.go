package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to a writer, stderr by default.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs an ArborError.
func (h *LogHandler) HandleError(err *ArborError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[arbor error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[arbor error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError. Invariant violations get their own prefix.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	prefix := "[arbor panic]"
	var inv *InvariantError
	if stderrors.As(err, &inv) {
		prefix = "[arbor invariant]"
	}
	if err.Op != "" {
		fmt.Fprintf(w, "%s %s: %v\n", prefix, err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "%s %v\n", prefix, err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
