package ws2812

// criticalSection keeps interrupts disabled between enterCritical and exit.
// exit restores the state found on entry, so nesting is safe and interrupts
// that were already off stay off.
type criticalSection struct {
	state interruptState
}

func enterCritical() criticalSection {
	return criticalSection{state: disableInterrupts()}
}

func (c criticalSection) exit() {
	restoreInterrupts(c.state)
}
