package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything passed to Report and ReportPanic.
	// Tree.Guard, arbortest and the inspector all report here.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the destination for reports. Nil reinstalls a
// LogHandler writing to stderr; tests use this to undo their recorders.
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

// Report hands a non-fatal failure, such as a dump that could not be written,
// to the installed handler. A zero Timestamp is filled in.
func Report(err *ArborError) {
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

// ReportPanic hands a recovered panic to the installed handler. Invariant
// violations arrive here with an *InvariantError as the panic value.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in the surrounding function and swallows it. It is
// meant for goroutines that must not take the process down:
//
//	go func() {
//		defer errors.Recover("inspector.serve")
//		...
//	}()
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
	}
}

// RecoverWithCallback is Recover followed by callback(r).
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
		if callback != nil {
			callback(r)
		}
	}
}

// Catch runs fn and returns its panic, if any, as a *PanicError carrying the
// stack of the panicking goroutine. The same value is reported before Catch
// returns. Invariant violations stay reachable through errors.As.
func Catch(op string, fn func()) (err *PanicError) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(op, r)
			ReportPanic(err)
		}
	}()
	fn()
	return nil
}

// newPanicError must be called from the deferred function that recovered r,
// so that the captured stack still contains the panicking frames.
func newPanicError(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame, up to 32 frames.
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
