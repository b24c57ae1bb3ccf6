//go:build tinygo

package ws2812

import "runtime/interrupt"

type interruptState = interrupt.State

func disableInterrupts() interruptState {
	return interrupt.Disable()
}

func restoreInterrupts(state interruptState) {
	interrupt.Restore(state)
}
