package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// serializationPlaceholder stands in for values that cannot be rendered
// as JSON. Building a record must never fail.
const serializationPlaceholder = "[unserializable value]"

// recordContext is the configuration snapshot a build reads. Taken under
// the logger's lock so a record never mixes old and new settings.
type recordContext struct {
	mode     Mode
	platform Platform
}

// buildRecord normalizes one Input plus a severity into a LogRecord.
// Pure transformation: every input yields a record, no error path.
func buildRecord(in Input, level Severity, rc recordContext, now time.Time) LogRecord {
	rec := LogRecord{
		Level:       level,
		Platform:    rc.platform,
		Environment: rc.mode,
		Timestamp:   newTimestamp(now),
	}

	switch v := in.(type) {
	case ErrorDescriptor:
		rec.Level = severityForCode(v.Code)
		rec.Message = v.Message
		rec.Stack = fmt.Sprintf("%s on line %d", v.File, v.Line)
		rec.Kind = normalizeKind("other")
	case Exception:
		rec.Message = fmt.Sprintf("%s in %s:%d", v.Message, v.File, v.Line)
		rec.Stack = v.Stack
		if rec.Stack == "" {
			rec.Stack = StackNone
		}
		rec.Kind = normalizeKind(v.Class)
	case Message:
		rec.Message = stringify(v.Value)
		rec.Stack = StackNone
		rec.Kind = normalizeKind("other")
	}

	return rec
}

// severityForCode maps a numeric error-type code onto the fixed severity
// table. Unrecognized codes are treated as exceptions.
func severityForCode(code ErrorCode) Severity {
	switch code {
	case CodeNotice, CodeUserNotice, CodeStrict, CodeDeprecated, CodeUserDeprecated:
		return SeverityInfo
	case CodeWarning, CodeCoreWarning, CodeCompileWarning, CodeUserWarning:
		return SeverityWarning
	case CodeRecoverable:
		return SeverityError
	case CodeFatal, CodeParse, CodeCoreError, CodeCompileError, CodeUserError:
		return SeverityCritical
	default:
		return SeverityException
	}
}

// normalizeKind is total and case-insensitive: every input string maps to
// exactly one of the four kinds.
func normalizeKind(class string) Kind {
	switch strings.ToLower(class) {
	case "typeerror":
		return KindTypeError
	case "parseerror":
		return KindSyntaxError
	case "other":
		return KindOther
	default:
		return KindCustomError
	}
}

// stringify renders a value for the record message: scalars keep their
// string form, everything else becomes best-effort JSON.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", v)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return serializationPlaceholder
	}
	return string(data)
}
