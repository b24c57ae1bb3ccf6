package ws2812

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MaxCount is the longest chain a Device can drive. The color buffer is a
// fixed array of this size.
const MaxCount = 64

// Status holds the lifecycle flags of a Device.
type Status uint8

const (
	StatusInitialized Status = 1 << iota
	StatusPoweredOn
)

// Has reports whether all flags in f are set.
func (s Status) Has(f Status) bool {
	return s&f == f
}

func (s Status) String() string {
	if s == 0 {
		return "unbound"
	}
	var parts []string
	if s.Has(StatusInitialized) {
		parts = append(parts, "initialized")
	}
	if s.Has(StatusPoweredOn) {
		parts = append(parts, "powered")
	}
	return strings.Join(parts, "|")
}

// Device is the driver context for one LED chain. The zero value is an
// unbound device.
type Device struct {
	status    Status
	binding   Binding
	count     uint16
	iteration uint32
	colors    [MaxCount]Color
}

// Init binds the device to b and prepares count LEDs.
//
// An already initialized device is uninitialized first. setup is run over
// every LED; if it fails the device is left initialized but off. If power is
// set the device is powered on with update, and rolled back to unbound if
// that fails.
func (d *Device) Init(b Binding, count uint16, setup Initializer, power bool, update Updater) error {
	if count == 0 || count > MaxCount {
		return errors.Wrapf(ErrInvalidArgument, "led count %d outside [1, %d]", count, MaxCount)
	}
	if err := b.validate(); err != nil {
		return err
	}

	if d.status.Has(StatusInitialized) {
		log.Debug("ws2812: reinitializing device")
		if err := d.Uninit(); err != nil {
			return err
		}
	} else {
		*d = Device{}
	}

	d.binding = b
	b.Port.SetDirection(b.powerMask() | b.dataMask())
	b.Port.WriteOutput(0)
	d.status = StatusInitialized
	d.count = count
	log.Debugf("ws2812: initialized %d leds (power pin %d, data pin %d)", count, b.PowerPin, b.DataPin)

	for i := uint16(0); i < d.count; i++ {
		if err := setup.InitLED(&d.colors[i], i); err != nil {
			return errors.Wrapf(err, "init led %d", i)
		}
	}

	if power {
		if err := d.PowerOn(update); err != nil {
			if uerr := d.Uninit(); uerr != nil {
				log.Warnf("ws2812: rollback after failed power on: %v", uerr)
			}
			return err
		}
	}

	return nil
}

// PowerOn switches the chain's supply on, waits for it to settle and sends
// the first frame through Update.
func (d *Device) PowerOn(update Updater) error {
	if !d.status.Has(StatusInitialized) {
		return errors.Wrap(ErrInvalidArgument, "power on: device not initialized")
	}
	if d.status.Has(StatusPoweredOn) {
		return errors.Wrap(ErrInvalidState, "power on: already on")
	}

	p := d.binding.Port
	p.WriteOutput(p.ReadOutput() | d.binding.powerMask())
	d.status |= StatusPoweredOn
	d.waiter().wait(PowerSettleDelay)
	log.Debug("ws2812: power on")

	return d.Update(update)
}

// PowerOff switches the chain's supply off. The buffer is kept.
func (d *Device) PowerOff() error {
	if !d.status.Has(StatusInitialized) {
		return errors.Wrap(ErrInvalidArgument, "power off: device not initialized")
	}
	if !d.status.Has(StatusPoweredOn) {
		return errors.Wrap(ErrInvalidState, "power off: already off")
	}

	p := d.binding.Port
	p.WriteOutput(p.ReadOutput() &^ d.binding.powerMask())
	d.status &^= StatusPoweredOn
	d.waiter().wait(PowerSettleDelay)
	log.Debug("ws2812: power off")

	return nil
}

// Update runs update over every LED and sends the buffer. The iteration
// counter only advances once the frame has been sent.
func (d *Device) Update(update Updater) error {
	if !d.status.Has(StatusInitialized) {
		return errors.Wrap(ErrInvalidArgument, "update: device not initialized")
	}
	if !d.status.Has(StatusPoweredOn) {
		return errors.Wrap(ErrInvalidState, "update: device is off")
	}

	for i := uint16(0); i < d.count; i++ {
		if err := update.UpdateLED(&d.colors[i], i, d.iteration); err != nil {
			return errors.Wrapf(err, "update led %d", i)
		}
	}

	if err := d.write(); err != nil {
		return err
	}
	d.iteration++
	log.Tracef("ws2812: frame %d sent", d.iteration)

	return nil
}

// Uninit powers the device off if needed, releases its pins and resets it to
// the zero value.
func (d *Device) Uninit() error {
	if !d.status.Has(StatusInitialized) {
		return errors.Wrap(ErrInvalidArgument, "uninit: device not initialized")
	}

	if d.status.Has(StatusPoweredOn) {
		if err := d.PowerOff(); err != nil {
			return err
		}
	}

	p := d.binding.Port
	p.WriteOutput(0)
	p.SetDirection(0)
	*d = Device{}
	log.Debug("ws2812: uninitialized")

	return nil
}

func (d *Device) Status() Status {
	return d.status
}

func (d *Device) Initialized() bool {
	return d.status.Has(StatusInitialized)
}

func (d *Device) PoweredOn() bool {
	return d.status.Has(StatusPoweredOn)
}

// Count returns the number of LEDs, or 0 for an unbound device.
func (d *Device) Count() uint16 {
	return d.count
}

// Iteration returns the number of frames sent by Update since Init.
func (d *Device) Iteration() uint32 {
	return d.iteration
}

// Color returns the buffered color of LED i.
func (d *Device) Color(i uint16) (Color, error) {
	if i >= d.count {
		return Color{}, errors.Wrapf(ErrInvalidArgument, "led %d outside chain of %d", i, d.count)
	}
	return d.colors[i], nil
}

// Colors returns a copy of the active part of the buffer.
func (d *Device) Colors() []Color {
	c := make([]Color, d.count)
	copy(c, d.colors[:d.count])
	return c
}

func (d *Device) waiter() waiter {
	clock, _ := d.binding.Port.(Delayer)
	return waiter{clock: clock}
}
