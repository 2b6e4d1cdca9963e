//go:build semx_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Count_ is the signed count word of the fast semaphore strategies.
// Padding is force-enabled via the semx_enable_padding build tag.
// Use: go build -tags=semx_enable_padding
type Count_ struct {
	atomic.Int32
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Int32{})%CacheLineSize_) % CacheLineSize_]byte
}
