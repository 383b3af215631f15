package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	successLogName = "success_log.txt"
	failedLogName  = "failed_log.txt"

	blockSeparator = "-----------------------------------"

	// noResponseMarker is written when the transport produced no response
	// at all (connection refused, timeout, and so on).
	noResponseMarker = "No response"
)

// fileRecorder appends one human-readable block per transmission to
// success_log.txt or failed_log.txt. Files only ever grow; rotation is
// someone else's job.
type fileRecorder struct {
	successPath string
	failedPath  string
	mu          sync.Mutex
}

// newFileRecorder creates the log directory (with parents) up front so a
// bad path fails loudly at construction instead of silently per call.
func newFileRecorder(dir string) (*fileRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ErrInvalidConfig("failed to create log directory: " + err.Error())
	}
	return &fileRecorder{
		successPath: filepath.Join(dir, successLogName),
		failedPath:  filepath.Join(dir, failedLogName),
	}, nil
}

// Record appends the outcome block to the file matching the outcome.
// Appends are serialized so concurrent calls never interleave blocks.
func (r *fileRecorder) Record(record LogRecord, out Outcome) error {
	path := r.failedPath
	if out.Success {
		path = r.successPath
	}

	block := formatBlock(record, out)

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return ErrFileError("failed to open outcome log", err)
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return ErrFileError("failed to append outcome block", err)
	}
	return nil
}

// formatBlock renders one record block. Deterministic for a fixed record
// and outcome.
func formatBlock(record LogRecord, out Outcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s]\n", record.Timestamp)
	fmt.Fprintf(&b, "LEVEL: %s\n", record.Level)
	fmt.Fprintf(&b, "Message: %s\n", record.Message)
	fmt.Fprintf(&b, "Stack: %s\n", record.Stack)
	fmt.Fprintf(&b, "Platform: %s\n", record.Platform)
	fmt.Fprintf(&b, "Environment: %s\n", record.Environment)

	if out.Success {
		fmt.Fprintf(&b, "Response: %s\n", out.Body)
	} else {
		body := out.Body
		if out.StatusCode == 0 {
			body = noResponseMarker
		}
		fmt.Fprintf(&b, "Response: %s\n", body)
		if out.TransportErr != nil {
			fmt.Fprintf(&b, "CURL Error: %v\n", out.TransportErr)
		}
	}

	b.WriteString(blockSeparator + "\n")
	return b.String()
}
