//go:build semx_trace || semx_trace_wait

package opt

// TraceWait_ enables elapsed-time accounting around semaphore waits.
// Use: go build -tags=semx_trace_wait (or semx_trace for both paths)
const TraceWait_ = true
