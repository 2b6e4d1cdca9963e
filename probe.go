package semx

import "github.com/llxisdsh/semx/internal/opt"

// probes holds the optional instrumentation of one semaphore. Every hook
// is guarded by a build-tag constant, so disabled builds pay nothing.
type probes struct {
	tracer   *Tracer
	branches *BranchStats
}

func (p *probes) set(t *Tracer, b *BranchStats) {
	p.tracer = t
	p.branches = b
}

func (p *probes) tracing(op TraceOp) bool {
	if op == TraceWait {
		return opt.TraceWait_ && p.tracer != nil
	}
	return opt.TracePost_ && p.tracer != nil
}

func (p *probes) branch(br branch) {
	if opt.BranchStat_ && p.branches != nil {
		p.branches.record(br)
	}
}
