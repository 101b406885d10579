package trace

import "errors"

// MultiTracer fans every event out to its children.
type MultiTracer struct {
	gate
	tracers []Tracer
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{gate: gate{level}, tracers: tracers}
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, child := range t.tracers {
		child.Emit(ev)
	}
}

func (t *MultiTracer) Flush() error { return t.each(Tracer.Flush) }

func (t *MultiTracer) Close() error { return t.each(Tracer.Close) }

func (t *MultiTracer) each(op func(Tracer) error) error {
	errs := make([]error, 0, len(t.tracers))
	for _, child := range t.tracers {
		errs = append(errs, op(child))
	}
	return errors.Join(errs...)
}

// Ring finds the ring buffer among the children; the CLI dumps it on failure.
func (t *MultiTracer) Ring() (*RingTracer, bool) {
	for _, child := range t.tracers {
		if ring, ok := child.(*RingTracer); ok {
			return ring, true
		}
	}
	return nil, false
}
