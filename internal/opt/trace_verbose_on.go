//go:build semx_trace_verbose

package opt

// TraceVerbose_ makes the tracer log every traced invocation.
// Use: go build -tags=semx_trace,semx_trace_verbose
const TraceVerbose_ = true
