package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Journal appends one JSON object per session event. Reserved keys (ts, level,
// msg, session) always win over caller fields.
type Journal struct {
	mu      sync.Mutex
	enc     *json.Encoder
	closer  io.Closer
	session string
	clock   func() time.Time
	events  int
}

// OpenJournal creates the file at path. An empty path yields a journal that
// counts events but writes nothing.
func OpenJournal(path, session string) (*Journal, error) {
	if path == "" {
		return NewJournal(io.Discard, session), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	j := NewJournal(f, session)
	j.closer = f
	return j, nil
}

func NewJournal(w io.Writer, session string) *Journal {
	return &Journal{enc: json.NewEncoder(w), session: session, clock: time.Now}
}

func (j *Journal) Info(event string, fields map[string]any)  { j.Record(LevelInfo, event, fields) }
func (j *Journal) Warn(event string, fields map[string]any)  { j.Record(LevelWarn, event, fields) }
func (j *Journal) Error(event string, fields map[string]any) { j.Record(LevelError, event, fields) }

func (j *Journal) Record(level Level, event string, fields map[string]any) {
	if j == nil {
		return
	}
	entry := make(map[string]any, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = j.clock().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = event
	if j.session != "" {
		entry["session"] = j.session
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.enc == nil {
		return
	}
	j.events++
	_ = j.enc.Encode(entry)
}

// Events reports how many events were recorded, including the discarded ones.
func (j *Journal) Events() int {
	if j == nil {
		return 0
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.events
}

// Close is safe to call more than once; events after Close are dropped.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.enc = nil
	if j.closer == nil {
		return nil
	}
	c := j.closer
	j.closer = nil
	return c.Close()
}
