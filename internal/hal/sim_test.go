package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimRecordsWrites(t *testing.T) {
	s := NewSim()
	s.SetDirection(0x03)
	s.WriteOutput(0x01)
	s.Delay(time.Microsecond)
	s.WriteOutput(0x03)

	assert.Equal(t, uint8(0x03), s.Direction())
	assert.Equal(t, uint8(0x03), s.ReadOutput())
	assert.Equal(t, time.Microsecond, s.Now())
	assert.Equal(t, []Event{
		{At: 0, Register: RegDirection, Value: 0x03},
		{At: 0, Register: RegOutput, Value: 0x01},
		{At: time.Microsecond, Register: RegOutput, Value: 0x03},
	}, s.Events())
}

func TestSimReset(t *testing.T) {
	s := NewSim()
	s.WriteOutput(0x80)
	s.Delay(time.Millisecond)
	s.Reset()

	assert.Empty(t, s.Events())
	assert.Equal(t, uint8(0x80), s.ReadOutput())
	assert.Equal(t, time.Millisecond, s.Now())
}

func TestRegisterString(t *testing.T) {
	assert.Equal(t, "DDR", RegDirection.String())
	assert.Equal(t, "PORT", RegOutput.String())
	assert.Equal(t, "N/A", Register(9).String())
}

// send writes bits on pin 1 of s, keeping pin 0 high, and latches.
func send(s *Sim, bits ...bool) {
	for _, b := range bits {
		s.WriteOutput(0x03)
		if b {
			s.Delay(800 * time.Nanosecond)
		} else {
			s.Delay(400 * time.Nanosecond)
		}
		s.WriteOutput(0x01)
		if b {
			s.Delay(450 * time.Nanosecond)
		} else {
			s.Delay(850 * time.Nanosecond)
		}
	}
	s.Delay(50 * time.Microsecond)
}

var testDecoder = Decoder{Threshold: 600 * time.Nanosecond, Latch: 50 * time.Microsecond}

func byteBits(v byte) []bool {
	bits := make([]bool, 8)
	for i := range bits {
		bits[i] = v&(0x80>>i) != 0
	}
	return bits
}

func TestPulses(t *testing.T) {
	s := NewSim()
	s.WriteOutput(0x01)
	send(s, true, false)

	p := s.Pulses(1)
	require.Len(t, p, 2)
	assert.Equal(t, Pulse{Start: 0, High: 800 * time.Nanosecond, Low: 450 * time.Nanosecond}, p[0])
	assert.Equal(t, 1250*time.Nanosecond, p[0].Period())
	assert.Equal(t, 1250*time.Nanosecond, p[1].Start)
	assert.Equal(t, 400*time.Nanosecond, p[1].High)
	assert.Equal(t, 850*time.Nanosecond+50*time.Microsecond, p[1].Low)

	assert.Equal(t, []Pulse{{Start: 0, High: s.Now()}}, s.Pulses(0), "pin 0 rises once and stays high")
}

func TestPulsesIgnoresDirection(t *testing.T) {
	events := []Event{
		{At: 0, Register: RegDirection, Value: 0xff},
		{At: 10, Register: RegOutput, Value: 0x04},
		{At: 20, Register: RegDirection, Value: 0x00},
	}

	assert.Equal(t, []Pulse{{Start: 10, High: 20}}, Pulses(events, 2, 30))
}

func TestFrames(t *testing.T) {
	s := NewSim()
	send(s, append(byteBits(0xa5), byteBits(0x0f)...)...)
	send(s, byteBits(0xff)...)

	frames, err := s.Frames(1, testDecoder)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0xa5, 0x0f}, {0xff}}, frames)
}

func TestFramesErrors(t *testing.T) {
	t.Run("not byte aligned", func(t *testing.T) {
		s := NewSim()
		send(s, true, false, true)

		_, err := s.Frames(1, testDecoder)
		assert.Error(t, err)
	})

	t.Run("not latched", func(t *testing.T) {
		s := NewSim()
		send(s, byteBits(0x01)...)
		s.WriteOutput(0x03)
		s.Delay(time.Microsecond)
		s.WriteOutput(0x01)

		frames, err := s.Frames(1, testDecoder)
		assert.Error(t, err)
		assert.Equal(t, [][]byte{{0x01}}, frames)
	})
}
