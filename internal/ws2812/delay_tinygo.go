//go:build tinygo

package ws2812

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

// spin waits for d with a cycle counted loop.
func spin(d time.Duration) {
	delay.Sleep(d)
}
