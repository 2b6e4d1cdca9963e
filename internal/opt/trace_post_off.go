//go:build !semx_trace && !semx_trace_post

package opt

const TracePost_ = false
