//go:build semx_trace || semx_trace_post

package opt

// TracePost_ enables elapsed-time accounting around semaphore posts.
// Use: go build -tags=semx_trace_post (or semx_trace for both paths)
const TracePost_ = true
