package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. At LevelError it still
// records file-level events so that a failing run can dump them afterwards.
type RingTracer struct {
	gate

	mu    sync.Mutex
	buf   []Event
	total uint64 // events written since creation
}

func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{gate: gate{level}, buf: make([]Event, capacity)}
}

func (t *RingTracer) keeps(ev *Event) bool {
	switch {
	case ev.Kind == KindHeartbeat:
		return true
	case t.level == LevelError:
		return ev.Scope <= ScopeFile
	default:
		return t.level.ShouldEmit(ev.Scope)
	}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.keeps(ev) {
		return
	}
	t.mu.Lock()
	t.buf[t.total%uint64(len(t.buf))] = *ev
	t.total++
	t.mu.Unlock()
}

// Snapshot copies the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	size := uint64(len(t.buf))
	n := min(t.total, size)
	out := make([]Event, n)
	for i := range n {
		out[i] = t.buf[(t.total-n+i)%size]
	}
	return out
}

// Dump writes the snapshot to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }

func (t *RingTracer) Close() error { return nil }
