package neopixel

import (
	"testing"

	"github.com/callebjorkell/ws2812/internal/hal"
	"github.com/callebjorkell/ws2812/internal/ws2812"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightness(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		light  uint32
		output uint32
	}{
		{"full brightness red", 0xff0000, 100, 0xff0000},
		{"full brightness green", 0x00ff00, 100, 0x00ff00},
		{"full brightness blue", 0x0000ff, 100, 0x0000ff},
		{"zero brightness red", 0xff0000, 0, 0x000000},
		{"zero brightness green", 0x00ff00, 0, 0x000000},
		{"zero brightness blue", 0x0000ff, 0, 0x000000},
		{"50 percent", 0x806040, 50, 0x403020},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			o := withBrightness(ws2812.RGB(tc.input), tc.light)
			assert.Equal(t, tc.output, o.Uint32())
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"blink", "color", "breathe", "rainbow"} {
		p, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotZero(t, p.Period)
	}

	_, ok := Lookup("disco")
	assert.False(t, ok)
}

func TestBlinkFrames(t *testing.T) {
	sim := hal.NewSim()
	prog := Blink()
	var d ws2812.Device

	require.NoError(t, d.Init(ws2812.Binding{Port: sim, PowerPin: 0, DataPin: 1}, 1, prog.Init, true, prog.Update))
	require.NoError(t, d.Update(prog.Update))
	require.NoError(t, d.Update(prog.Update))
	require.NoError(t, d.Update(prog.Update))

	frames, err := sim.Frames(1, FrameDecoder)
	require.NoError(t, err)
	assert.Equal(t, []string{"0000ff", "00ff00", "ff0000", "0000ff"}, formatAll(frames))
}

func TestColorFade(t *testing.T) {
	prog := ColorFade()
	c := ws2812.Color{}
	require.NoError(t, prog.Init.InitLED(&c, 0))
	assert.Equal(t, uint32(0xff0000), c.Uint32())

	checkpoints := map[uint32]uint32{
		255:      0xffff00,
		2 * 255:  0x00ff00,
		3 * 255:  0x00ffff,
		4 * 255:  0x0000ff,
		5 * 255:  0xff00ff,
		6 * 255:  0xff0000,
		12 * 255: 0xff0000,
	}

	for it := uint32(0); it < 12*255; it++ {
		require.NoError(t, prog.Update.UpdateLED(&c, 0, it))
		if want, ok := checkpoints[it+1]; ok {
			assert.Equal(t, want, c.Uint32(), "after %d updates", it+1)
		}
	}
}

func TestBreathe(t *testing.T) {
	prog := Breathe(ws2812.RGB(0xc86432))
	tt := []struct {
		iteration uint32
		output    uint32
	}{
		{0, 0x000000},
		{50, 0x643219},
		{100, 0xc86432},
		{150, 0x643219},
		{200, 0x000000},
	}

	for _, tc := range tt {
		var c ws2812.Color
		require.NoError(t, prog.Update.UpdateLED(&c, 3, tc.iteration))
		assert.Equal(t, tc.output, c.Uint32(), "iteration %d", tc.iteration)
	}
}

func TestRainbowIsPure(t *testing.T) {
	prog := Rainbow()
	a := ws2812.RGB(0x123456)
	b := ws2812.Color{}

	require.NoError(t, prog.Update.UpdateLED(&a, 7, 42))
	require.NoError(t, prog.Update.UpdateLED(&b, 7, 42))
	assert.Equal(t, a, b)

	require.NoError(t, prog.Update.UpdateLED(&b, 0, 0))
	assert.Equal(t, ws2812.Color{Red: 0xff}, b)
}

func TestWheel(t *testing.T) {
	assert.Equal(t, ws2812.Color{Red: 0xff}, wheel(0))
	assert.Equal(t, ws2812.Color{Green: 0xff, Blue: 0xff}, wheel(0.5))
	assert.Equal(t, ws2812.Color{Red: 0x7f, Blue: 0xff}, wheel(0.75))
}

func formatAll(frames [][]byte) []string {
	var s []string
	for _, f := range frames {
		s = append(s, FormatFrame(f))
	}
	return s
}
