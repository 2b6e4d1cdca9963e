//go:build semx_branchstat

package opt

// BranchStat_ enables fast/slow branch counters in the fast strategies.
// Use: go build -tags=semx_branchstat
const BranchStat_ = true
