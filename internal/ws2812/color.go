package ws2812

import "fmt"

// bytesPerLED is the number of bytes one LED occupies on the wire.
const bytesPerLED = 3

// Color is the color of a single LED.
//
// The chip reads its channels green first, then red, then blue. That order is
// applied by the encoder; the field order here has no meaning on the wire.
type Color struct {
	Red, Green, Blue uint8
}

// RGB builds a Color from a 0xRRGGBB value.
func RGB(c uint32) Color {
	return Color{
		Red:   uint8(c >> 16),
		Green: uint8(c >> 8),
		Blue:  uint8(c),
	}
}

// Uint32 returns the color as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.Red)<<16 | uint32(c.Green)<<8 | uint32(c.Blue)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Uint32())
}

// wire returns the channels in transmit order.
func (c Color) wire() [bytesPerLED]byte {
	return [bytesPerLED]byte{c.Green, c.Red, c.Blue}
}
