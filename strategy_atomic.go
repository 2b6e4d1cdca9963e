//go:build !semx_classic && !semx_irq

package semx

// Semaphore is the strategy selected for this build: AtomicSemaphore.
// Build with -tags=semx_classic or -tags=semx_irq to select another.
type Semaphore = AtomicSemaphore

// StrategyName names the strategy selected for this build.
const StrategyName = "atomic"
