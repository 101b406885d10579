package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ry/internal/trace"
)

// tracing owns the tracer of one invocation.
type tracing struct {
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	format    trace.Format
}

// setupTracing builds the tracer from the resolved settings and attaches it
// to the command context.
func (a *app) setupTracing(cmd *cobra.Command) error {
	s := a.settings
	level, err := trace.ParseLevel(s.traceLevel)
	if err != nil {
		return err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}
	mode, err := trace.ParseMode(s.traceMode)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(s.traceFormat)
	if err != nil {
		return err
	}

	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: s.traceOutput,
		RingSize:   s.traceRingSize,
		Heartbeat:  s.traceHeartbeat,
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		// без Close: stderr закрывать нельзя
		cfg.Output = struct{ io.Writer }{a.stderr}
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	a.tracing = &tracing{
		tracer:    tracer,
		heartbeat: trace.StartHeartbeat(tracer, s.traceHeartbeat),
		format:    format,
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

// finish stops the heartbeat and flushes the tracer. After a failed command
// the ring buffer is dumped to w.
func (t *tracing) finish(failed bool, w io.Writer) {
	if t == nil {
		return
	}
	t.heartbeat.Stop()

	if failed {
		if ring := ringOf(t.tracer); ring != nil {
			fmt.Fprintln(w, "trace: last events before failure:")
			if err := ring.Dump(w, t.format); err != nil {
				fmt.Fprintf(w, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := t.tracer.Flush(); err != nil {
		fmt.Fprintf(w, "trace: flush error: %v\n", err)
	}
	if err := t.tracer.Close(); err != nil {
		fmt.Fprintf(w, "trace: close error: %v\n", err)
	}
}

func ringOf(t trace.Tracer) *trace.RingTracer {
	switch tr := t.(type) {
	case *trace.RingTracer:
		return tr
	case *trace.MultiTracer:
		if ring, ok := tr.Ring(); ok {
			return ring
		}
	}
	return nil
}
