package logging

import (
	"io"
	"sync"

	"go.uber.org/zap"
)

// LogsExporter writes kept log lines to a writer, newest first if reverse is set
type LogsExporter interface {
	Export(w io.Writer, reverse bool) error
}

type logLine []byte

// memoryLogs is a fixed size ring of encoded log entries
type memoryLogs struct {
	mu    sync.Mutex
	lines []logLine
	next  int
	count int
}

func NewMemoryLogger(size int) zap.Sink {
	if size < 1 {
		size = 1
	}
	return &memoryLogs{
		lines: make([]logLine, size),
	}
}

func (m *memoryLogs) Write(p []byte) (n int, err error) {
	l := make(logLine, len(p))
	copy(l, p)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines[m.next] = l
	m.next = (m.next + 1) % len(m.lines)
	if m.count < len(m.lines) {
		m.count++
	}
	return len(p), nil
}

func (m *memoryLogs) Sync() error {
	return nil
}

func (m *memoryLogs) Close() error {
	return nil
}

// Len returns the number of kept lines
func (m *memoryLogs) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *memoryLogs) Export(w io.Writer, reverse bool) error {
	m.mu.Lock()
	snapshot := make([]logLine, 0, m.count)
	oldest := (m.next - m.count + len(m.lines)) % len(m.lines)
	for i := 0; i < m.count; i++ {
		snapshot = append(snapshot, m.lines[(oldest+i)%len(m.lines)])
	}
	m.mu.Unlock()

	for i := range snapshot {
		l := snapshot[i]
		if reverse {
			l = snapshot[len(snapshot)-1-i]
		}
		if _, err := w.Write(l); err != nil {
			return err
		}
	}
	return nil
}
