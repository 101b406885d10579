package trace

import "time"

type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller means coarser, so a level
// keeps every scope up to some bound.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // одна команда CLI
	ScopePass                    // lex, parse, fmt
	ScopeFile                    // один исходный файл
	ScopeNode                    // отдельные узлы AST
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeFile:   "file",
	ScopeNode:   "node",
}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Begin and end events of a span share SpanID;
// Elapsed and Extra are filled on the end event only.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	GID      uint64
	Name     string
	Detail   string
	Elapsed  time.Duration
	Extra    map[string]string
}
