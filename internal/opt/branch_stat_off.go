//go:build !semx_branchstat

package opt

const BranchStat_ = false
