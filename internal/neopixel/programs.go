package neopixel

import (
	"time"

	"github.com/callebjorkell/ws2812/internal/ws2812"
)

const fullChannel = 0xff

// Program is a named pair of strategies and the period its updates are meant
// to be sent at.
type Program struct {
	Name   string
	Init   ws2812.Initializer
	Update ws2812.Updater
	Period time.Duration
}

// Programs returns every built in program.
func Programs() []Program {
	return []Program{
		Blink(),
		ColorFade(),
		Breathe(ws2812.RGB(0x0080ff)),
		Rainbow(),
	}
}

// Lookup finds a built in program by name.
func Lookup(name string) (Program, bool) {
	for _, p := range Programs() {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

var blinkSequence = [...]ws2812.Color{
	{Blue: fullChannel},
	{Red: fullChannel},
	{Green: fullChannel},
}

// Blink starts blue and steps every LED through blue, red and green.
func Blink() Program {
	return Program{
		Name: "blink",
		Init: ws2812.Fill(blinkSequence[0]),
		Update: ws2812.UpdateFunc(func(c *ws2812.Color, _ uint16, iteration uint32) error {
			*c = blinkSequence[iteration%uint32(len(blinkSequence))]
			return nil
		}),
		Period: 500 * time.Millisecond,
	}
}

// fadeSections is the number of legs of the fade around the color wheel. Each
// leg moves one channel by one step per update, 255 updates long.
const fadeSections = 6

// ColorFade starts red and fades every LED around the color wheel: red,
// yellow, green, cyan, blue, magenta and back.
func ColorFade() Program {
	return Program{
		Name:   "color",
		Init:   ws2812.Fill(ws2812.Color{Red: fullChannel}),
		Update: ws2812.UpdateFunc(fade),
		Period: 5 * time.Millisecond,
	}
}

func fade(c *ws2812.Color, _ uint16, iteration uint32) error {
	switch (iteration % (fullChannel * fadeSections)) / fullChannel {
	case 0: // red -> yellow
		if c.Green < fullChannel {
			c.Green++
		}
	case 1: // yellow -> green
		if c.Red > 0 {
			c.Red--
		}
	case 2: // green -> cyan
		if c.Blue < fullChannel {
			c.Blue++
		}
	case 3: // cyan -> blue
		if c.Green > 0 {
			c.Green--
		}
	case 4: // blue -> magenta
		if c.Red < fullChannel {
			c.Red++
		}
	case 5: // magenta -> red
		if c.Blue > 0 {
			c.Blue--
		}
	}
	return nil
}

// breathSteps is the number of updates from dark to full and back.
const breathSteps = 200

// Breathe slowly fades every LED between off and color.
func Breathe(color ws2812.Color) Program {
	return Program{
		Name: "breathe",
		Init: ws2812.NoInit,
		Update: ws2812.UpdateFunc(func(c *ws2812.Color, _ uint16, iteration uint32) error {
			light := iteration % breathSteps
			if light > breathSteps/2 {
				light = breathSteps - light
			}
			*c = withBrightness(color, light)
			return nil
		}),
		Period: 10 * time.Millisecond,
	}
}

// Rainbow runs a color wheel along the chain.
func Rainbow() Program {
	return Program{
		Name: "rainbow",
		Init: ws2812.NoInit,
		Update: ws2812.UpdateFunc(func(c *ws2812.Color, index uint16, iteration uint32) error {
			*c = wheel(float64((iteration*4+uint32(index)*16)%360) / 360)
			return nil
		}),
		Period: 30 * time.Millisecond,
	}
}

// Get the same color, but with a lower or equal brightness, on a scale from 0-100, where 100 is the same as the input.
func withBrightness(c ws2812.Color, light uint32) ws2812.Color {
	if light >= 100 {
		return c
	}
	if light == 0 {
		return ws2812.Color{}
	}

	return ws2812.Color{
		Red:   uint8(uint32(c.Red) * light / 100),
		Green: uint8(uint32(c.Green) * light / 100),
		Blue:  uint8(uint32(c.Blue) * light / 100),
	}
}

// wheel maps h in [0, 1) onto the fully saturated edge of the color wheel.
func wheel(h float64) ws2812.Color {
	h *= 6
	switch {
	case h < 1:
		return ws2812.Color{Red: fullChannel, Green: uint8(fullChannel * h)}
	case h < 2:
		return ws2812.Color{Red: uint8(fullChannel * (2 - h)), Green: fullChannel}
	case h < 3:
		return ws2812.Color{Green: fullChannel, Blue: uint8(fullChannel * (h - 2))}
	case h < 4:
		return ws2812.Color{Green: uint8(fullChannel * (4 - h)), Blue: fullChannel}
	case h < 5:
		return ws2812.Color{Red: uint8(fullChannel * (h - 4)), Blue: fullChannel}
	default:
		return ws2812.Color{Red: fullChannel, Blue: uint8(fullChannel * (6 - h))}
	}
}
