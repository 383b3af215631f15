package adapters

import (
	"go.uber.org/zap/zapcore"

	"github.com/loghawk/loghawk-go/pkg/logger"
)

// ZapCore is a zapcore.Core that mirrors entries into a loghawk Logger.
// Tee it with the host's real core; it never writes locally itself.
type ZapCore struct {
	forwarder logger.Logger
	level     zapcore.LevelEnabler
	fields    []zapcore.Field
}

func NewZapCore(forwarder logger.Logger) zapcore.Core {
	return &ZapCore{
		forwarder: forwarder,
		level:     zapcore.InfoLevel,
	}
}

func (zc *ZapCore) Enabled(level zapcore.Level) bool {
	return zc.level.Enabled(level)
}

func (zc *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	combined := make([]zapcore.Field, 0, len(zc.fields)+len(fields))
	combined = append(combined, zc.fields...)
	combined = append(combined, fields...)

	return &ZapCore{
		forwarder: zc.forwarder,
		level:     zc.level,
		fields:    combined,
	}
}

func (zc *ZapCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if zc.Enabled(entry.Level) {
		return checked.AddCore(entry, zc)
	}
	return checked
}

func (zc *ZapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	level := severityForZap(entry.Level)

	all := make([]zapcore.Field, 0, len(zc.fields)+len(fields))
	all = append(all, zc.fields...)
	all = append(all, fields...)

	if len(all) == 0 {
		zc.forwarder.Log(logger.Message{Value: entry.Message}, level)
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, field := range all {
		field.AddTo(enc)
	}
	value := map[string]any{"message": entry.Message}
	for key, v := range enc.Fields {
		value[key] = v
	}

	zc.forwarder.Log(logger.Message{Value: value}, level)
	return nil
}

func (zc *ZapCore) Sync() error {
	return nil
}

func severityForZap(level zapcore.Level) logger.Severity {
	switch level {
	case zapcore.DebugLevel, zapcore.InfoLevel:
		return logger.SeverityInfo
	case zapcore.WarnLevel:
		return logger.SeverityWarning
	case zapcore.ErrorLevel:
		return logger.SeverityError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return logger.SeverityCritical
	default:
		return logger.SeverityInfo
	}
}
