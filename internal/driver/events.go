package driver

import "time"

// Stage identifies the front-end pass a progress event belongs to.
type Stage uint8

const (
	StageLex Stage = iota + 1
	StageParse
	StageFormat
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lexing"
	case StageParse:
		return "parsing"
	case StageFormat:
		return "formatting"
	default:
		return ""
	}
}

// Status is the state of one file within a directory run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Event reports progress of one file. Elapsed is set on Done and Error.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink receives events from worker goroutines; OnEvent must be
// goroutine-safe.
type ProgressSink interface {
	OnEvent(Event)
}

// ChanSink forwards events to a channel. The channel is owned by the caller.
type ChanSink chan<- Event

func (c ChanSink) OnEvent(ev Event) { c <- ev }

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
