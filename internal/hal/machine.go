//go:build tinygo

package hal

import "machine"

// MachinePort spreads the bits of a port over TinyGo machine pins.
type MachinePort struct {
	pins [8]machine.Pin
	dir  uint8
	out  uint8
}

// NewMachinePort builds a port from pins keyed by bit number. Bits above 7
// are ignored.
func NewMachinePort(pins map[uint8]machine.Pin) *MachinePort {
	p := &MachinePort{}
	for i := range p.pins {
		p.pins[i] = machine.NoPin
	}
	for bit, pin := range pins {
		if bit < 8 {
			p.pins[bit] = pin
		}
	}
	return p
}

func (p *MachinePort) SetDirection(mask uint8) {
	for bit, pin := range p.pins {
		if pin == machine.NoPin {
			continue
		}
		m := uint8(1) << bit
		if mask&m != 0 {
			pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
			pin.Set(p.out&m != 0)
		} else {
			pin.Configure(machine.PinConfig{Mode: machine.PinInput})
		}
	}
	p.dir = mask
}

func (p *MachinePort) WriteOutput(value uint8) {
	changed := (p.out ^ value) & p.dir
	p.out = value
	for bit, pin := range p.pins {
		m := uint8(1) << bit
		if changed&m != 0 && pin != machine.NoPin {
			pin.Set(value&m != 0)
		}
	}
}

func (p *MachinePort) ReadOutput() uint8 {
	return p.out
}
