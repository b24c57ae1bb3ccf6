package hal

import (
	"time"

	"github.com/pkg/errors"
)

// Pulse is one high phase on a pin and the low phase that followed it, up to
// the next rising edge or the end of the trace.
type Pulse struct {
	Start time.Duration
	High  time.Duration
	Low   time.Duration
}

// Period is the time from this pulse's rising edge to the next one.
func (p Pulse) Period() time.Duration {
	return p.High + p.Low
}

// Pulses extracts the high pulses on pin from a trace of register writes that
// ended at end. Direction writes are ignored.
func Pulses(events []Event, pin uint8, end time.Duration) []Pulse {
	var (
		pulses []Pulse
		level  bool
		rise   time.Duration
		fall   time.Duration
	)
	mask := uint8(1) << pin

	for _, e := range events {
		if e.Register != RegOutput {
			continue
		}
		high := e.Value&mask != 0
		switch {
		case high && !level:
			if n := len(pulses); n > 0 {
				pulses[n-1].Low = e.At - fall
			}
			rise = e.At
		case !high && level:
			fall = e.At
			pulses = append(pulses, Pulse{Start: rise, High: e.At - rise})
		}
		level = high
	}

	if level {
		pulses = append(pulses, Pulse{Start: rise, High: end - rise})
	} else if n := len(pulses); n > 0 {
		pulses[n-1].Low = end - fall
	}

	return pulses
}

// Decoder turns pulses back into bytes, most significant bit first.
type Decoder struct {
	// Threshold separates the bits: a high phase longer than it is a 1.
	Threshold time.Duration

	// Latch is the shortest low phase that ends a frame.
	Latch time.Duration
}

// Frames splits pulses into latched frames. Bits after the last latch, or a
// frame that does not end on a byte boundary, are an error.
func (dec Decoder) Frames(pulses []Pulse) ([][]byte, error) {
	var (
		frames [][]byte
		frame  []byte
		cur    byte
		bits   int
	)

	for i, p := range pulses {
		cur <<= 1
		if p.High > dec.Threshold {
			cur |= 1
		}
		bits++
		if bits%8 == 0 {
			frame = append(frame, cur)
			cur = 0
		}

		if p.Low >= dec.Latch {
			if bits%8 != 0 {
				return frames, errors.Errorf("hal: frame %d ends after %d bits at pulse %d", len(frames), bits, i)
			}
			frames = append(frames, frame)
			frame, bits = nil, 0
		}
	}

	if bits != 0 {
		return frames, errors.Errorf("hal: %d bits after the last latch", bits)
	}

	return frames, nil
}
