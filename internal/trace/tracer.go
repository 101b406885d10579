package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Tracer receives events. Emit must be safe for concurrent use: files of a
// directory are parsed in parallel.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// gate реализует Level/Enabled для всех трейсеров.
type gate struct{ level Level }

func (g gate) Level() Level { return g.level }

func (g gate) Enabled() bool { return g.level > LevelOff }

type nopTracer struct{ gate }

func (nopTracer) Emit(*Event) {}

func (nopTracer) Flush() error { return nil }

func (nopTracer) Close() error { return nil }

// Nop drops everything; FromContext returns it for a bare context.
var Nop Tracer = nopTracer{}

// StorageMode says where events go: straight to the output, into an
// in-memory ring, or both.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1
	ModeRing
	ModeBoth
)

var modeNames = map[StorageMode]string{
	ModeStream: "stream",
	ModeRing:   "ring",
	ModeBoth:   "both",
}

func (m StorageMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

func ParseMode(s string) (StorageMode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

const defaultRingSize = 4096

type Config struct {
	Level      Level
	Mode       StorageMode   // 0 means ModeStream
	Format     Format        // FormatAuto выбирает по расширению OutputPath
	Output     io.Writer     // имеет приоритет над OutputPath
	OutputPath string        // "" и "-" означают stderr
	RingSize   int           // <= 0 means 4096
	Heartbeat  time.Duration // the caller starts it, see StartHeartbeat
}

// New builds the tracer described by cfg. LevelOff always yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	mode := cfg.Mode
	if mode == 0 {
		mode = ModeStream
	}
	if _, ok := modeNames[mode]; !ok {
		return nil, fmt.Errorf("unknown storage mode: %v", mode)
	}

	var ring *RingTracer
	if mode != ModeStream {
		ring = NewRingTracer(cfg.RingSize, cfg.Level)
		if mode == ModeRing {
			return ring, nil
		}
	}

	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	format := cfg.Format
	if format == FormatAuto {
		format = formatForPath(cfg.OutputPath)
	}
	stream := NewStreamTracer(w, cfg.Level, format)
	if ring == nil {
		return stream, nil
	}
	return NewMultiTracer(cfg.Level, stream, ring), nil
}

func formatForPath(path string) Format {
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".jsonl") {
		return FormatNDJSON
	}
	return FormatText
}

func openOutput(cfg Config) (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		// без Close: stderr закрывать нельзя
		return struct{ io.Writer }{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("open trace output: %w", err)
	}
	return f, nil
}
