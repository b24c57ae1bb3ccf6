package ws2812

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// Bit timings for the WS2812B. Each bit starts with the line high; a 0 bit
// drops it after T0H, a 1 bit after T1H, and the line then stays low for the
// rest of BitPeriod. The chip tolerates ±150ns on every phase.
const (
	DataRate  = 800 * physic.KiloHertz
	BitPeriod = 1250 * time.Nanosecond
	T0H       = 400 * time.Nanosecond
	T1H       = 800 * time.Nanosecond
)

const (
	// ResetDelay is the low time after the last bit that latches a frame.
	ResetDelay = 50 * time.Microsecond

	// PowerSettleDelay is how long the supply rail is given after switching.
	PowerSettleDelay = 100 * time.Microsecond
)
