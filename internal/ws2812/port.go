package ws2812

import (
	"time"

	"github.com/pkg/errors"
)

// Port is an 8 bit GPIO bank, modelled on a microcontroller's data direction
// and output registers. Bit n of every value refers to pin n of the bank.
type Port interface {
	// SetDirection makes the pins set in mask outputs and the rest inputs.
	SetDirection(mask uint8)

	// WriteOutput sets the output register.
	WriteOutput(value uint8)

	// ReadOutput returns the last value of the output register.
	ReadOutput() uint8
}

// Delayer is implemented by ports that keep their own clock, such as a
// simulated port. When the bound port is a Delayer all protocol delays are
// handed to it instead of being busy-waited.
type Delayer interface {
	Delay(d time.Duration)
}

// Binding selects the port and the two pins of it that the chain is wired to.
type Binding struct {
	Port     Port
	PowerPin uint8
	DataPin  uint8
}

func (b Binding) validate() error {
	if b.Port == nil {
		return errors.Wrap(ErrInvalidArgument, "binding has no port")
	}
	if b.PowerPin > 7 || b.DataPin > 7 {
		return errors.Wrapf(ErrInvalidArgument, "pins %d/%d outside an 8 bit port", b.PowerPin, b.DataPin)
	}
	if b.PowerPin == b.DataPin {
		return errors.Wrapf(ErrInvalidArgument, "power and data share pin %d", b.DataPin)
	}
	return nil
}

func (b Binding) powerMask() uint8 {
	return 1 << b.PowerPin
}

func (b Binding) dataMask() uint8 {
	return 1 << b.DataPin
}

type waiter struct {
	clock Delayer
}

func (w waiter) wait(d time.Duration) {
	if w.clock != nil {
		w.clock.Delay(d)
		return
	}
	spin(d)
}
