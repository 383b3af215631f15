package adapters

import (
	"github.com/sirupsen/logrus"

	"github.com/loghawk/loghawk-go/pkg/logger"
)

// LogrusHook forwards every logrus entry to a loghawk Logger so hosts
// already using logrus get remote forwarding without touching call sites.
type LogrusHook struct {
	forwarder logger.Logger
}

func NewLogrusHook(forwarder logger.Logger) *LogrusHook {
	return &LogrusHook{
		forwarder: forwarder,
	}
}

func (hook *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *LogrusHook) Fire(entry *logrus.Entry) error {
	level := severityForLogrus(entry.Level)

	// An attached error is worth a full exception record; everything else
	// goes through as a plain message, with fields folded into the value.
	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		hook.forwarder.Log(logger.CaptureError(err), level)
		return nil
	}

	hook.forwarder.Log(logger.Message{Value: entryValue(entry)}, level)
	return nil
}

func severityForLogrus(level logrus.Level) logger.Severity {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel, logrus.InfoLevel:
		return logger.SeverityInfo
	case logrus.WarnLevel:
		return logger.SeverityWarning
	case logrus.ErrorLevel:
		return logger.SeverityError
	case logrus.FatalLevel, logrus.PanicLevel:
		return logger.SeverityCritical
	default:
		return logger.SeverityInfo
	}
}

func entryValue(entry *logrus.Entry) any {
	if len(entry.Data) == 0 {
		return entry.Message
	}

	value := map[string]any{"message": entry.Message}
	for key, v := range entry.Data {
		value[key] = v
	}
	return value
}

// InstallLogrusHook attaches the hook to the standard logrus logger.
func InstallLogrusHook(forwarder logger.Logger) {
	logrus.AddHook(NewLogrusHook(forwarder))
}
