package neopixel

import (
	"fmt"
	"strings"

	"github.com/callebjorkell/ws2812/internal/hal"
	"github.com/callebjorkell/ws2812/internal/ws2812"
	log "github.com/sirupsen/logrus"
)

// FrameDecoder reads frames sent by a ws2812.Device back off a simulated port.
var FrameDecoder = hal.Decoder{
	Threshold: (ws2812.T0H + ws2812.T1H) / 2,
	Latch:     ws2812.ResetDelay,
}

// LogFrames returns an Option that decodes what went out on the simulated
// data pin after every device operation and logs it at debug level.
func LogFrames(sim *hal.Sim, dataPin uint8) Option {
	return WithFrameHook(func(d *ws2812.Device) {
		frames, err := sim.Frames(dataPin, FrameDecoder)
		sim.Reset()
		if err != nil {
			log.Warnf("Unable to decode frame: %v", err)
			return
		}
		for _, f := range frames {
			log.Debugf("frame %d: %s", d.Iteration(), FormatFrame(f))
		}
	})
}

// FormatFrame renders a frame as one GRB hex triple per LED.
func FormatFrame(frame []byte) string {
	leds := make([]string, 0, len(frame)/3)
	for i := 0; i+3 <= len(frame); i += 3 {
		leds = append(leds, fmt.Sprintf("%02x%02x%02x", frame[i], frame[i+1], frame[i+2]))
	}
	return strings.Join(leds, " ")
}
