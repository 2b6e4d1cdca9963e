//go:build !semx_tickrate_100

package opt

// TickRateHz_ is the scheduler tick frequency all relative delays are
// expressed in. Default 1000 Hz (1ms tick).
const TickRateHz_ = 1000
