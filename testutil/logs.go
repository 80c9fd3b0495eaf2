package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/kbukum/batchpipe/logger"
)

// Logs captures JSON log output of a Logger.
type Logs struct {
	Logger *logger.Logger

	mu  sync.Mutex
	buf bytes.Buffer
}

// Entry is one decoded log line.
type Entry map[string]any

// Message returns the log message.
func (e Entry) Message() string { return e.str("message") }

// Level returns the log level.
func (e Entry) Level() string { return e.str("level") }

// Str returns a string field, or "" when absent.
func (e Entry) Str(key string) string { return e.str(key) }

func (e Entry) str(key string) string {
	s, _ := e[key].(string)
	return s
}

// NewLogs returns a debug-level JSON logger writing into memory.
func NewLogs(t testing.TB) *Logs {
	t.Helper()
	l := &Logs{}
	cfg := &logger.Config{Format: logger.FormatJSON, Level: "debug"}
	cfg.ApplyDefaults()
	l.Logger = logger.NewWithWriter(cfg, t.Name(), l)
	return l
}

// Write implements io.Writer.
func (l *Logs) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

// String returns the raw captured output.
func (l *Logs) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// Entries decodes every captured line.
func (l *Logs) Entries(t testing.TB) []Entry {
	t.Helper()
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewBufferString(l.String()))
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

// Messages returns the message of every captured line, in order.
func (l *Logs) Messages(t testing.TB) []string {
	t.Helper()
	var msgs []string
	for _, e := range l.Entries(t) {
		msgs = append(msgs, e.Message())
	}
	return msgs
}
