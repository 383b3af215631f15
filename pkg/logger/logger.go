package logger

import (
	"context"
	"sync"
	"time"
)

type hawkLogger struct {
	config   Config
	sender   Sender
	recorder OutcomeRecorder
	mu       sync.RWMutex
	closed   bool
	now      func() time.Time
}

// New validates the configuration, creates the outcome-log directory when
// file logging is enabled, and returns a ready Logger. Configuration
// problems are the only errors this package ever raises.
func New(config Config) (Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var recorder OutcomeRecorder
	if config.LogDir != "" {
		r, err := newFileRecorder(config.LogDir)
		if err != nil {
			return nil, err
		}
		recorder = r
	}

	return &hawkLogger{
		config:   config,
		sender:   NewHTTPSender(config),
		recorder: recorder,
		now:      time.Now,
	}, nil
}

func (l *hawkLogger) Log(in Input, level Severity) {
	l.LogContext(context.Background(), in, level)
}

// LogContext builds the record, performs the blocking POST, and appends
// the outcome block when file logging is enabled. The caller blocks for
// the round trip but never sees an error.
func (l *hawkLogger) LogContext(ctx context.Context, in Input, level Severity) {
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return
	}
	rc := recordContext{mode: l.config.Mode, platform: l.config.Platform}
	endpoint := l.config.Endpoint
	timeout := l.config.HTTPTimeout
	l.mu.RUnlock()

	record := buildRecord(in, level, rc, l.now())

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out := l.sender.Send(ctx, endpoint, record)

	if l.recorder != nil {
		// Best-effort as well; a full disk must not crash the host.
		_ = l.recorder.Record(record, out)
	}
}

func (l *hawkLogger) Info(value any) {
	l.Log(Message{Value: value}, SeverityInfo)
}

func (l *hawkLogger) Warning(value any) {
	l.Log(Message{Value: value}, SeverityWarning)
}

func (l *hawkLogger) Error(value any) {
	l.Log(Message{Value: value}, SeverityError)
}

func (l *hawkLogger) Critical(value any) {
	l.Log(Message{Value: value}, SeverityCritical)
}

func (l *hawkLogger) Exception(err error) {
	l.Log(captureError(err, 2), SeverityException)
}

func (l *hawkLogger) SetEndpoint(endpoint string) error {
	if err := validate.Var(endpoint, "required,url"); err != nil {
		return ErrInvalidConfig("invalid endpoint URL: " + endpoint)
	}

	l.mu.Lock()
	l.config.Endpoint = endpoint
	l.mu.Unlock()
	return nil
}

func (l *hawkLogger) SetMode(mode Mode) error {
	switch mode {
	case ModeDevelopment, ModeProduction:
	default:
		return ErrInvalidConfig("invalid mode: " + string(mode))
	}

	l.mu.Lock()
	l.config.Mode = mode
	l.mu.Unlock()
	return nil
}

func (l *hawkLogger) SetPlatform(platform Platform) error {
	switch platform {
	case PlatformWeb, PlatformMobile:
	default:
		return ErrInvalidConfig("invalid platform: " + string(platform))
	}

	l.mu.Lock()
	l.config.Platform = platform
	l.mu.Unlock()
	return nil
}

func (l *hawkLogger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	return l.sender.Close()
}
