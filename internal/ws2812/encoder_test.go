package ws2812

import (
	"testing"

	"github.com/callebjorkell/ws2812/internal/hal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe records whether interrupts were enabled for every write that raised
// the data line.
type probe struct {
	*hal.Sim
	enabled  int
	disabled int
}

func (p *probe) WriteOutput(value uint8) {
	if value&(1<<dataPin) != 0 {
		if interruptsEnabled() {
			p.enabled++
		} else {
			p.disabled++
		}
	}
	p.Sim.WriteOutput(value)
}

func TestFrameLayout(t *testing.T) {
	sim, b := newSim()
	var d Device
	leds := []Color{
		{Red: 0x12, Green: 0x34, Blue: 0x56},
		{Red: 0xa5, Green: 0x0f, Blue: 0xf0},
	}
	setup := InitFunc(func(c *Color, index uint16) error {
		*c = leds[index]
		return nil
	})

	require.NoError(t, d.Init(b, uint16(len(leds)), setup, true, NoUpdate))

	pulses := sim.Pulses(dataPin)
	require.Len(t, pulses, len(leds)*bytesPerLED*8)

	for i, p := range pulses {
		assert.Contains(t, []interface{}{T0H, T1H}, p.High, "pulse %d", i)
		if i < len(pulses)-1 {
			assert.Equal(t, BitPeriod, p.Period(), "pulse %d", i)
		}
	}
	assert.GreaterOrEqual(t, int64(pulses[len(pulses)-1].Low), int64(ResetDelay))

	// 0x34 = 0011 0100, sent most significant bit first.
	var first []bool
	for _, p := range pulses[:8] {
		first = append(first, p.High == T1H)
	}
	assert.Equal(t, []bool{false, false, true, true, false, true, false, false}, first)

	frames, err := sim.Frames(dataPin, decoder)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x34, 0x12, 0x56, 0x0f, 0xa5, 0xf0}}, frames)
}

func TestFullChain(t *testing.T) {
	sim, b := newSim()
	var d Device
	require.NoError(t, d.Init(b, MaxCount, Fill(RGB(0x808080)), true, NoUpdate))
	require.NoError(t, d.Update(NoUpdate))

	frames, err := sim.Frames(dataPin, decoder)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	for _, f := range frames {
		assert.Len(t, f, MaxCount*bytesPerLED)
	}
	assert.Len(t, sim.Pulses(dataPin), 2*MaxCount*bytesPerLED*8)
}

func TestFrameLeavesOtherBits(t *testing.T) {
	sim, b := newSim()
	var d Device
	require.NoError(t, d.Init(b, 1, Fill(blue), true, NoUpdate))

	for _, e := range sim.Events() {
		if e.Register == hal.RegOutput && e.Value&(1<<dataPin) != 0 {
			assert.NotZero(t, e.Value&(1<<powerPin), "power must stay on while sending")
		}
	}
	assert.Equal(t, uint8(1<<powerPin), sim.ReadOutput())
}

func TestInterruptsHeldForFrame(t *testing.T) {
	p := &probe{Sim: hal.NewSim()}
	var d Device

	require.True(t, interruptsEnabled())
	require.NoError(t, d.Init(Binding{Port: p, PowerPin: powerPin, DataPin: dataPin}, 4, Fill(red), true, NoUpdate))
	require.NoError(t, d.Update(NoUpdate))

	assert.Zero(t, p.enabled)
	assert.Equal(t, 2*4*bytesPerLED*8, p.disabled)
	assert.True(t, interruptsEnabled(), "interrupts must be restored after the frame")
}

func TestInterruptsStayDisabled(t *testing.T) {
	_, b := newSim()
	var d Device

	state := disableInterrupts()
	defer restoreInterrupts(state)

	require.NoError(t, d.Init(b, 1, Fill(red), true, NoUpdate))
	assert.False(t, interruptsEnabled(), "a frame must not enable interrupts it found disabled")
}

func TestWritePreconditions(t *testing.T) {
	sim, b := newSim()
	var d Device

	assert.ErrorIs(t, d.write(), ErrInvalidArgument)

	require.NoError(t, d.Init(b, 2, Fill(red), false, NoUpdate))
	events := len(sim.Events())
	assert.ErrorIs(t, d.write(), ErrInvalidArgument)

	empty := Device{status: StatusInitialized | StatusPoweredOn, binding: b}
	assert.ErrorIs(t, empty.write(), ErrInvalidData)

	assert.Len(t, sim.Events(), events, "failed writes must not touch the port")
	assert.True(t, interruptsEnabled())
}
