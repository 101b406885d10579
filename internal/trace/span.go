package trace

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var seqCounter, spanCounter atomic.Uint64

// NextSeq numbers events globally; the order survives interleaved writers.
func NextSeq() uint64 { return seqCounter.Add(1) }

func NextSpanID() uint64 { return spanCounter.Add(1) }

// getGoroutineID читает номер из заголовка runtime.Stack ("goroutine 17 [").
// Только для трассы, логика на него не опирается.
func getGoroutineID() uint64 {
	var buf [64]byte
	header := buf[:runtime.Stack(buf[:], false)]
	header, ok := bytes.CutPrefix(header, []byte("goroutine "))
	if !ok {
		return 0
	}
	num, _, _ := bytes.Cut(header, []byte(" "))
	gid, err := strconv.ParseUint(string(num), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

// Span is an open begin/end pair. A disabled span is a valid value and
// every method on it is a no-op.
type Span struct {
	tracer  Tracer
	ev      Event // shared fields of the begin and end events
	started time.Time
}

func wants(t Tracer, scope Scope) bool {
	if t == nil || !t.Enabled() {
		return false
	}
	// на LevelError всё уходит в ring-буфер
	return t.Level() == LevelError || t.Level().ShouldEmit(scope)
}

// Begin opens a span under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !wants(t, scope) {
		return &Span{}
	}
	now := time.Now()
	s := &Span{
		tracer:  t,
		started: now,
		ev: Event{
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			GID:      getGoroutineID(),
			Name:     name,
		},
	}
	begin := s.ev
	begin.Time, begin.Seq, begin.Kind = now, NextSeq(), KindSpanBegin
	t.Emit(&begin)
	return s
}

// Start opens a span under the one stored in ctx and returns ctx carrying
// the new span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx).SpanID)
	if s.tracer == nil {
		return ctx, s
	}
	return WithSpanContext(ctx, SpanContext{SpanID: s.ev.SpanID, GID: s.ev.GID}), s
}

// Point emits an instant event under the current span of ctx.
func Point(ctx context.Context, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !wants(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: CurrentSpan(ctx).SpanID,
		GID:      getGoroutineID(),
		Name:     name,
		Detail:   detail,
	})
}

func (s *Span) live() bool { return s != nil && s.tracer != nil }

// End closes the span and returns its duration, 0 for a disabled span.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	end := s.ev
	end.Time = time.Now()
	end.Seq = NextSeq()
	end.Kind = KindSpanEnd
	end.Detail = detail
	end.Elapsed = end.Time.Sub(s.started)
	s.tracer.Emit(&end)
	return end.Elapsed
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.ev.Extra == nil {
		s.ev.Extra = make(map[string]string, 2)
	}
	s.ev.Extra[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}
