package semx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/llxisdsh/semx/internal/opt"
)

// TraceOp names a traced semaphore operation.
type TraceOp uint8

const (
	TraceWait TraceOp = iota
	TracePost
)

func (op TraceOp) String() string {
	if op == TraceWait {
		return "wait"
	}
	return "post"
}

// TraceRecord is the accumulated cost of one operation.
type TraceRecord struct {
	Cycles uint64 `msgpack:"cycles"` // elapsed nanoseconds
	Count  int64  `msgpack:"count"`
}

// Mean returns the average cost per invocation.
func (r TraceRecord) Mean() time.Duration {
	if r.Count == 0 {
		return 0
	}
	return time.Duration(r.Cycles / uint64(r.Count))
}

// TraceSnapshot is a point-in-time copy of a Tracer.
type TraceSnapshot struct {
	Wait TraceRecord `msgpack:"wait"`
	Post TraceRecord `msgpack:"post"`
}

func (s TraceSnapshot) String() string {
	return fmt.Sprintf("wait: %d calls, mean %v; post: %d calls, mean %v",
		s.Wait.Count, s.Wait.Mean(), s.Post.Count, s.Post.Mean())
}

type traceSlot struct {
	mu  sync.Mutex
	rec TraceRecord
}

type paddedTraceSlot struct {
	traceSlot
	_ [(opt.CacheLineSize_ - unsafe.Sizeof(traceSlot{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
}

// Tracer accumulates elapsed time around the wait and post hot paths.
// Semaphores only feed it when built with the semx_trace, semx_trace_wait
// or semx_trace_post tags; otherwise the hooks compile out and a Tracer
// attached with Instrument stays empty.
//
// The zero value is not usable; create one with NewTracer and tear it
// down with Close.
type Tracer struct {
	slots  [2]paddedTraceSlot
	log    *slog.Logger
	closed atomic.Bool
}

var traceEpoch = time.Now()

// NewTracer creates a tracer. logger receives one Debug record per traced
// invocation in semx_trace_verbose builds; nil means slog.Default().
func NewTracer(logger *slog.Logger) *Tracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracer{log: logger}
}

// Enter returns the timestamp that starts a traced section.
func (t *Tracer) Enter() int64 {
	return int64(time.Since(traceEpoch))
}

// Exit closes the section started at start and accumulates it under op.
func (t *Tracer) Exit(op TraceOp, start int64) {
	if t.closed.Load() {
		return
	}
	elapsed := int64(time.Since(traceEpoch)) - start
	if elapsed < 0 {
		elapsed = 0
	}
	s := &t.slots[op]
	s.mu.Lock()
	s.rec.Cycles += uint64(elapsed)
	s.rec.Count++
	n := s.rec.Count
	s.mu.Unlock()

	if opt.TraceVerbose_ {
		t.log.LogAttrs(context.Background(), slog.LevelDebug, "semaphore "+op.String(),
			slog.Duration("elapsed", time.Duration(elapsed)),
			slog.Int64("count", n))
	}
}

// Record returns the accumulated record of op.
func (t *Tracer) Record(op TraceOp) TraceRecord {
	s := &t.slots[op]
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

// Snapshot returns both records.
func (t *Tracer) Snapshot() TraceSnapshot {
	return TraceSnapshot{Wait: t.Record(TraceWait), Post: t.Record(TracePost)}
}

// Reset zeroes both records.
func (t *Tracer) Reset() {
	for i := range t.slots {
		s := &t.slots[i]
		s.mu.Lock()
		s.rec = TraceRecord{}
		s.mu.Unlock()
	}
}

// Close stops accumulation. Records stay readable.
func (t *Tracer) Close() {
	t.closed.Store(true)
}

// Dump writes a msgpack-encoded Snapshot to w.
func (t *Tracer) Dump(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(t.Snapshot())
}

// ReadTraceSnapshot decodes a snapshot written by Dump.
func ReadTraceSnapshot(r io.Reader) (TraceSnapshot, error) {
	var s TraceSnapshot
	err := msgpack.NewDecoder(r).Decode(&s)
	return s, err
}
