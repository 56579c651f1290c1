package testhelpers

import (
	"bytes"
	"github.com/myrjola/findmoney/internal/logging"
	"io"
	"log/slog"
	"sync"
)

// NewLogger creates a debug level logger writing to logSink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}

// LogBuffer collects log output so that tests can assert on warnings.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p) //nolint:wrapcheck // bytes.Buffer never fails
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewBufferLogger returns a logger together with the buffer it writes to.
func NewBufferLogger() (*slog.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return NewLogger(buf), buf
}
