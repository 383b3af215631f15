package logger

import (
	"time"
)

type Severity string

const (
	SeverityInfo      Severity = "info"
	SeverityWarning   Severity = "warning"
	SeverityError     Severity = "error"
	SeverityCritical  Severity = "critical"
	SeverityException Severity = "exception"
)

// Kind classifies the origin of a record: language-level type errors,
// parse/syntax errors, anything raised as a custom exception, and plain
// non-exception inputs.
type Kind string

const (
	KindTypeError   Kind = "typeError"
	KindSyntaxError Kind = "syntaxError"
	KindCustomError Kind = "customError"
	KindOther       Kind = "other"
)

type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

type Platform string

const (
	PlatformWeb    Platform = "web"
	PlatformMobile Platform = "mobile"
)

// StackNone marks records whose input carried no stack trace.
const StackNone = "N/A"

// timeLayout is the wire and file timestamp format.
const timeLayout = "2006-01-02 15:04:05"

// LogRecord is the flat record built once per Log call and sent as the
// JSON request body. Credentials travel in request headers, never here.
type LogRecord struct {
	Level       Severity `json:"level"`
	Kind        Kind     `json:"type"`
	Message     string   `json:"message"`
	Stack       string   `json:"stack"`
	Platform    Platform `json:"platform"`
	Environment Mode     `json:"environment"`
	Timestamp   string   `json:"timestamp"`
}

// ErrorCode is the numeric error-type code carried by an ErrorDescriptor.
// The values mirror the classic engine error bitmask so descriptors produced
// by runtime error handlers map through unchanged.
type ErrorCode int

const (
	CodeFatal          ErrorCode = 1
	CodeWarning        ErrorCode = 2
	CodeParse          ErrorCode = 4
	CodeNotice         ErrorCode = 8
	CodeCoreError      ErrorCode = 16
	CodeCoreWarning    ErrorCode = 32
	CodeCompileError   ErrorCode = 64
	CodeCompileWarning ErrorCode = 128
	CodeUserError      ErrorCode = 256
	CodeUserWarning    ErrorCode = 512
	CodeUserNotice     ErrorCode = 1024
	CodeStrict         ErrorCode = 2048
	CodeRecoverable    ErrorCode = 4096
	CodeDeprecated     ErrorCode = 8192
	CodeUserDeprecated ErrorCode = 16384
)

// Outcome is the result of a single transmission attempt.
type Outcome struct {
	Success      bool
	StatusCode   int
	Body         string
	TransportErr error
}

func newTimestamp(now time.Time) string {
	return now.Format(timeLayout)
}
