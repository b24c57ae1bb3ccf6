package neopixel

import (
	"time"

	"github.com/callebjorkell/ws2812/internal/ws2812"
	log "github.com/sirupsen/logrus"
)

type flashStep struct {
	on   bool
	hold time.Duration
}

var flashSequence = []flashStep{
	{true, 250 * time.Millisecond},
	{false, 40 * time.Millisecond},
	{true, 100 * time.Millisecond},
	{false, 40 * time.Millisecond},
	{true, 100 * time.Millisecond},
	{false, 0},
}

// Flash blinks the whole chain in color a few times, interrupting whatever
// was playing. The chain is left dark.
func (l *LedController) Flash(color ws2812.Color) error {
	release := l.queue.Acquire()
	defer release()

	log.Infof("Flashing color %s", color)

	for _, step := range flashSequence {
		c := ws2812.Color{}
		if step.on {
			c = color
		}

		err := l.do(func(d *ws2812.Device) error {
			if l.closed {
				return ErrClosed
			}
			return d.Update(solid(c))
		})
		if err != nil {
			return err
		}
		<-time.After(step.hold)
	}

	log.Debug("Flashing done...")
	return nil
}

// solid sets every LED to c.
func solid(c ws2812.Color) ws2812.Updater {
	return ws2812.UpdateFunc(func(led *ws2812.Color, _ uint16, _ uint32) error {
		*led = c
		return nil
	})
}
