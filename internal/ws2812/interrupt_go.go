//go:build !tinygo

package ws2812

import "sync/atomic"

// interruptState records whether interrupts were enabled before a disable.
type interruptState bool

// masked stands in for the global interrupt enable bit on hosts, where there
// is nothing to mask.
var masked atomic.Bool

func disableInterrupts() interruptState {
	return interruptState(!masked.Swap(true))
}

func restoreInterrupts(state interruptState) {
	masked.Store(!bool(state))
}

func interruptsEnabled() bool {
	return !masked.Load()
}
