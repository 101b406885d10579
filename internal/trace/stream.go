package trace

import (
	"io"
	"sync"
)

// StreamTracer formats and writes each event as it arrives.
type StreamTracer struct {
	gate
	format Format

	mu sync.Mutex
	w  io.Writer
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{gate: gate{level}, format: format, w: w}
}

func (t *StreamTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	line := FormatEvent(ev, t.format)
	t.mu.Lock()
	// сбой записи трассы не повод прерывать разбор
	_, _ = t.w.Write(line)
	t.mu.Unlock()
}

// Flush forwards to the writer when it buffers (bufio.Writer and friends).
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes, then closes the writer if it is an io.Closer.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
