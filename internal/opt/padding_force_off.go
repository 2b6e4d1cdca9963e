//go:build semx_disable_padding

package opt

import "sync/atomic"

// Count_ is the signed count word of the fast semaphore strategies.
// Padding is force-disabled via the semx_disable_padding build tag.
// Use: go build -tags=semx_disable_padding
type Count_ struct {
	atomic.Int32
}
