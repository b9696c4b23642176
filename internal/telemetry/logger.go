package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// JSONLogger appends one JSON object per event to the session log file.
// A logger built with an empty path discards everything.
type JSONLogger struct {
	mu sync.Mutex
	w  io.WriteCloser
}

func NewJSONLogger(path string) (*JSONLogger, error) {
	if path == "" {
		return &JSONLogger{w: nopCloser{Writer: io.Discard}}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &JSONLogger{w: f}, nil
}

// VerifyStarted records the beginning of one verification batch.
func (l *JSONLogger) VerifyStarted(sessionID string, pending, total int) {
	l.log("info", "verify_started", map[string]any{
		"session_id": sessionID,
		"pending":    pending,
		"total":      total,
	})
}

// VerifyFinished records the terminal outcome of a batch. failed is empty
// when every pending exercise passed.
func (l *JSONLogger) VerifyFinished(sessionID string, failed string, doneCount, total int) {
	fields := map[string]any{
		"session_id": sessionID,
		"done":       doneCount,
		"total":      total,
	}
	if failed != "" {
		fields["failed_exercise"] = failed
	}
	l.log("info", "verify_finished", fields)
}

// ListAction records a state mutation from the interactive list.
func (l *JSONLogger) ListAction(action string, index int) {
	l.log("info", "list_action", map[string]any{
		"action": action,
		"index":  index,
	})
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	l.log("error", msg, fields)
}

func (l *JSONLogger) log(level, msg string, fields map[string]any) {
	if l == nil || l.w == nil {
		return
	}
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	for k, v := range fields {
		entry[k] = v
	}
	b, _ := json.Marshal(entry)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(b, '\n'))
}

func (l *JSONLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
