package logger

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Input is the sealed set of values a Logger accepts. Exactly three cases
// exist: a plain Message, a structured ErrorDescriptor, and an Exception.
type Input interface {
	input()
}

// Message wraps an arbitrary value. Scalars are logged as their string
// form, anything else as best-effort JSON.
type Message struct {
	Value any
}

// ErrorDescriptor is a structured runtime error report. Its Code decides
// the record severity regardless of the level passed to Log.
type ErrorDescriptor struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
}

// Exception carries a caught error together with its origin and trace.
// Class is the error's type name and decides the record kind.
type Exception struct {
	Class   string
	Message string
	File    string
	Line    int
	Stack   string
}

func (Message) input()         {}
func (ErrorDescriptor) input() {}
func (Exception) input()       {}

// CaptureError builds an Exception from a Go error at the call site,
// filling file, line, and stack so hosts don't assemble variants by hand.
func CaptureError(err error) Exception {
	return captureError(err, 2)
}

func captureError(err error, skip int) Exception {
	exc := Exception{
		Class:   errClass(err),
		Message: err.Error(),
		Stack:   strings.TrimSpace(string(debug.Stack())),
	}

	if _, file, line, ok := runtime.Caller(skip); ok {
		parts := strings.Split(file, "/")
		exc.File = parts[len(parts)-1]
		exc.Line = line
	}

	return exc
}

// errClass reduces an error's Go type to its bare name, e.g.
// *fs.PathError -> "PathError".
func errClass(err error) string {
	name := strings.TrimLeft(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
