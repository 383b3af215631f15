package adapters

import (
	"io"
	"log"
	"strings"

	"github.com/loghawk/loghawk-go/pkg/logger"
)

// StandardLogAdapter redirects the stdlib log package into a loghawk
// Logger, one record per line.
type StandardLogAdapter struct {
	forwarder logger.Logger
	writer    *logWriter
}

type logWriter struct {
	forwarder logger.Logger
	level     logger.Severity
}

func NewStandardLogAdapter(forwarder logger.Logger) *StandardLogAdapter {
	writer := &logWriter{
		forwarder: forwarder,
		level:     logger.SeverityInfo,
	}

	adapter := &StandardLogAdapter{
		forwarder: forwarder,
		writer:    writer,
	}

	log.SetOutput(writer)

	return adapter
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	message := strings.TrimSpace(string(p))
	if message == "" {
		return len(p), nil
	}

	message = strings.TrimPrefix(message, log.Prefix())

	w.forwarder.Log(logger.Message{Value: message}, w.level)

	return len(p), nil
}

// SetLevel changes the severity assigned to subsequent lines.
func (a *StandardLogAdapter) SetLevel(level logger.Severity) {
	a.writer.level = level
}

func (a *StandardLogAdapter) GetWriter() io.Writer {
	return a.writer
}
