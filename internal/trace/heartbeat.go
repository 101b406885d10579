package trace

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a tick every interval while a long run is in progress.
// Ticks with no SpanEnd between them point at a file that hangs.
type Heartbeat struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// StartHeartbeat returns nil when tracing is off or interval <= 0.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	h := &Heartbeat{cancel: cancel}
	h.wg.Go(func() { beat(ctx, tracer, interval) })
	return h
}

func beat(ctx context.Context, tracer Tracer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			tracer.Emit(&Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    getGoroutineID(),
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(n),
			})
		}
	}
}

// Stop waits for the ticking goroutine; repeated calls and a nil receiver
// are fine.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.cancel()
	h.wg.Wait()
}
