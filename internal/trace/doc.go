// Package trace provides structured tracing for the ry front end.
//
// Tracing records where time goes while files are lexed and parsed and
// helps to find a hang in directory runs.
//
// # Usage
//
//	ry parse --trace=- --trace-level=detail ./src
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory for post-mortem dumps
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// A Level decides which Scope gets through: LevelPhase keeps driver and
// pass boundaries, LevelDetail adds per-file spans, LevelDebug keeps
// everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "parse")
//	defer span.End("")
package trace
