package ws2812

import "github.com/pkg/errors"

const msb = 0x80

// write sends the active LEDs as one frame followed by the reset latch.
//
// Every bit takes BitPeriod: the line goes high, drops after T0H for a 0 or
// after T1H for a 1, and stays low for the rest of the period. There is no
// resynchronisation within a frame, so interrupts stay disabled until the
// latch has been held and nothing may return between the first and the last
// edge.
func (d *Device) write() error {
	if !d.status.Has(StatusInitialized | StatusPoweredOn) {
		return errors.Wrap(ErrInvalidArgument, "write: device not initialized and powered")
	}
	if d.count*bytesPerLED == 0 {
		return errors.Wrap(ErrInvalidData, "write: empty buffer")
	}

	port := d.binding.Port
	w := d.waiter()
	out := port.ReadOutput()
	high := out | d.binding.dataMask()
	low := out &^ d.binding.dataMask()

	cs := enterCritical()
	defer cs.exit()

	for _, c := range d.colors[:d.count] {
		for _, b := range c.wire() {
			for bit := 0; bit < 8; bit++ {
				port.WriteOutput(high)
				w.wait(T0H)
				if b&msb == 0 {
					port.WriteOutput(low)
				}
				w.wait(T1H - T0H)
				port.WriteOutput(low)
				w.wait(BitPeriod - T1H)
				b <<= 1
			}
		}
	}

	port.WriteOutput(low)
	w.wait(ResetDelay)

	return nil
}
