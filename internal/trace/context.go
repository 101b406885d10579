package trace

import "context"

type ctxKey uint8

const (
	tracerKey ctxKey = iota
	spanKey
)

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey).(Tracer); ok {
			return t
		}
	}
	return Nop
}

func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey, t)
}

// SpanContext identifies the innermost open span; children use SpanID as
// their ParentID.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

// CurrentSpan возвращает нулевой SpanContext, если спана в ctx нет.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanKey).(SpanContext)
	return sc
}

func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	return context.WithValue(ctx, spanKey, sc)
}
