//go:build !semx_trace && !semx_trace_wait

package opt

const TraceWait_ = false
