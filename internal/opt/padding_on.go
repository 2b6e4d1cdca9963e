//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !semx_disable_padding && !semx_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Count_ is the signed count word of the fast semaphore strategies.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
type Count_ struct {
	atomic.Int32
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Int32{})%CacheLineSize_) % CacheLineSize_]byte
}
