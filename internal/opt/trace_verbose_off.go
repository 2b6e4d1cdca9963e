//go:build !semx_trace_verbose

package opt

const TraceVerbose_ = false
