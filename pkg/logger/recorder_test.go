package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRecorderSuccessBlock(t *testing.T) {
	dir := t.TempDir()
	recorder, err := newFileRecorder(dir)
	require.NoError(t, err)

	out := Outcome{Success: true, StatusCode: 200, Body: `{"status":"accepted"}`}
	require.NoError(t, recorder.Record(testRecord(), out))

	content := readLog(t, filepath.Join(dir, successLogName))
	assert.Contains(t, content, "[2024-03-15 10:30:00]\n")
	assert.Contains(t, content, "LEVEL: error\n")
	assert.Contains(t, content, "Message: boom\n")
	assert.Contains(t, content, "Stack: N/A\n")
	assert.Contains(t, content, "Platform: web\n")
	assert.Contains(t, content, "Environment: development\n")
	assert.Contains(t, content, `Response: {"status":"accepted"}`+"\n")
	assert.Contains(t, content, blockSeparator+"\n")
	assert.NotContains(t, content, "CURL Error:")

	_, err = os.Stat(filepath.Join(dir, failedLogName))
	assert.True(t, os.IsNotExist(err), "failure file must stay untouched on success")
}

func TestRecorderFailureBlockWithResponse(t *testing.T) {
	dir := t.TempDir()
	recorder, err := newFileRecorder(dir)
	require.NoError(t, err)

	out := Outcome{Success: false, StatusCode: 500, Body: "internal error"}
	require.NoError(t, recorder.Record(testRecord(), out))

	content := readLog(t, filepath.Join(dir, failedLogName))
	assert.Contains(t, content, "Response: internal error\n")
	assert.NotContains(t, content, "CURL Error:")

	_, err = os.Stat(filepath.Join(dir, successLogName))
	assert.True(t, os.IsNotExist(err), "success file must stay untouched on failure")
}

func TestRecorderFailureBlockWithTransportError(t *testing.T) {
	dir := t.TempDir()
	recorder, err := newFileRecorder(dir)
	require.NoError(t, err)

	out := Outcome{TransportErr: ErrNetworkError("failed to send request", errors.New("connection refused"))}
	require.NoError(t, recorder.Record(testRecord(), out))

	content := readLog(t, filepath.Join(dir, failedLogName))
	assert.Contains(t, content, "Response: "+noResponseMarker+"\n")
	assert.Contains(t, content, "CURL Error: ")
	assert.Contains(t, content, "connection refused")
}

func TestRecorderAppendsBlocks(t *testing.T) {
	dir := t.TempDir()
	recorder, err := newFileRecorder(dir)
	require.NoError(t, err)

	out := Outcome{Success: true, StatusCode: 200, Body: "ok"}
	require.NoError(t, recorder.Record(testRecord(), out))
	require.NoError(t, recorder.Record(testRecord(), out))

	content := readLog(t, filepath.Join(dir, successLogName))
	assert.Equal(t, 2, strings.Count(content, blockSeparator))
}

func TestRecorderBlockDeterministic(t *testing.T) {
	out := Outcome{Success: true, StatusCode: 200, Body: "ok"}

	first := formatBlock(testRecord(), out)
	second := formatBlock(testRecord(), out)

	assert.Equal(t, first, second)
}

func TestRecorderCreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "var", "log", "hawk")

	_, err := newFileRecorder(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRecorderDirectoryCreationFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := newFileRecorder(filepath.Join(file, "sub"))
	require.Error(t, err)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, ErrTypeInvalidConfig, typed.Type)
}
