//go:build semx_irq && !semx_classic

package semx

// Semaphore is the strategy selected for this build:
// InterruptDisableSemaphore.
type Semaphore = InterruptDisableSemaphore

// StrategyName names the strategy selected for this build.
const StrategyName = "irq"
