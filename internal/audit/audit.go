// Package audit is the append-only decision event sink. Each triage
// decision emits one Event; records are written as JSONL and never
// read back into the core's state.
package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// Event is one audit record as it appears on disk.
type Event struct {
	TsMs      int64          `json:"ts_ms"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
}

// Logger receives decision events. Implementations must be safe for
// concurrent use and must not block the caller beyond a file append.
type Logger interface {
	Record(eventType string, payload map[string]any)
}

// FileLogger appends JSONL records to a single file.
type FileLogger struct {
	mu sync.Mutex
	f  *os.File
}

// NewFileLogger opens (creating if needed) the audit log at path.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("audit: open log: %w", err)
	}
	return &FileLogger{f: f}, nil
}

// Record appends one event. Write failures are best-effort: a warning
// goes to stderr and the caller's decision flow is never interrupted.
func (l *FileLogger) Record(eventType string, payload map[string]any) {
	rec := Event{
		TsMs:      time.Now().UnixMilli(),
		EventType: eventType,
		Payload:   payload,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("WARNING: audit: marshal %s event: %v", eventType, err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.Write(append(data, '\n')); err != nil {
		log.Printf("WARNING: audit: write %s event: %v", eventType, err)
	}
}

// Close closes the underlying file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// Nop discards all events. Used when the audit sink fails to open —
// triage keeps working with auditing disabled.
type Nop struct{}

// Record discards the event.
func (Nop) Record(string, map[string]any) {}
