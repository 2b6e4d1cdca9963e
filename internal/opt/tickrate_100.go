//go:build semx_tickrate_100

package opt

// TickRateHz_ is the scheduler tick frequency.
// Lowered to 100 Hz (10ms tick) via the semx_tickrate_100 build tag.
// Use: go build -tags=semx_tickrate_100
const TickRateHz_ = 100
