package logger

import (
	"context"
)

// Logger forwards records to the configured endpoint. Transmission is
// best-effort: no method on this interface ever surfaces a delivery
// failure to the caller.
type Logger interface {
	Log(in Input, level Severity)
	LogContext(ctx context.Context, in Input, level Severity)

	Info(value any)
	Warning(value any)
	Error(value any)
	Critical(value any)
	Exception(err error)

	SetEndpoint(endpoint string) error
	SetMode(mode Mode) error
	SetPlatform(platform Platform) error

	Close() error
}

type Sender interface {
	Send(ctx context.Context, endpoint string, record LogRecord) Outcome
	Close() error
}

type OutcomeRecorder interface {
	Record(record LogRecord, out Outcome) error
}
