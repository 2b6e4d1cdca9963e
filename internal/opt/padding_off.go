//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !semx_disable_padding && !semx_enable_padding

package opt

import "sync/atomic"

// Count_ is the signed count word of the fast semaphore strategies.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type Count_ struct {
	atomic.Int32
}
