//go:build !tinygo

package hal

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PeriphPort spreads the bits of a port over individual periph.io pins. Bits
// without a pin only exist in the registers.
//
// Each write is a syscall or a memory mapped store depending on the host
// driver, so bit timing on a Linux host is best effort.
type PeriphPort struct {
	pins [8]gpio.PinIO
	dir  uint8
	out  uint8
}

// NewPeriphPort builds a port from pins keyed by bit number.
func NewPeriphPort(pins map[uint8]gpio.PinIO) (*PeriphPort, error) {
	p := &PeriphPort{}
	for bit, pin := range pins {
		if bit > 7 {
			return nil, errors.Errorf("hal: bit %d outside an 8 bit port", bit)
		}
		if pin == nil {
			return nil, errors.Errorf("hal: no pin for bit %d", bit)
		}
		p.pins[bit] = pin
	}
	return p, nil
}

// OpenPeriphPort initializes the periph host drivers and looks pins up by name
// (e.g. "GPIO18").
func OpenPeriphPort(names map[uint8]string) (*PeriphPort, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "hal: unable to initialize periph")
	}

	pins := make(map[uint8]gpio.PinIO, len(names))
	for bit, name := range names {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, errors.Errorf("hal: no gpio named %q", name)
		}
		log.Debugf("hal: bit %d -> %s", bit, pin)
		pins[bit] = pin
	}

	return NewPeriphPort(pins)
}

func (p *PeriphPort) SetDirection(mask uint8) {
	for bit, pin := range p.pins {
		if pin == nil {
			continue
		}
		m := uint8(1) << bit
		switch {
		case mask&m != 0:
			if err := pin.Out(level(p.out & m)); err != nil {
				log.Warnf("hal: %s as output: %v", pin, err)
			}
		case p.dir&m != 0:
			if err := pin.In(gpio.Float, gpio.NoEdge); err != nil {
				log.Warnf("hal: %s as input: %v", pin, err)
			}
		}
	}
	p.dir = mask
}

// WriteOutput only touches output pins whose level changes.
func (p *PeriphPort) WriteOutput(value uint8) {
	changed := (p.out ^ value) & p.dir
	p.out = value

	for bit, pin := range p.pins {
		m := uint8(1) << bit
		if pin == nil || changed&m == 0 {
			continue
		}
		if err := pin.Out(level(value & m)); err != nil {
			log.Warnf("hal: write %s: %v", pin, err)
		}
	}
}

func (p *PeriphPort) ReadOutput() uint8 {
	return p.out
}

// Halt releases every pin.
func (p *PeriphPort) Halt() error {
	var first error
	for _, pin := range p.pins {
		if pin == nil {
			continue
		}
		if err := pin.Halt(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func level(bit uint8) gpio.Level {
	if bit != 0 {
		return gpio.High
	}
	return gpio.Low
}
