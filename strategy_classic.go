//go:build semx_classic

package semx

// Semaphore is the strategy selected for this build: ClassicSemaphore.
type Semaphore = ClassicSemaphore

// StrategyName names the strategy selected for this build.
const StrategyName = "classic"
