//go:build !tinygo

package ws2812

import "time"

// spin busy-waits for d. time.Sleep would hand the thread back to the
// scheduler and overshoot by far more than a bit period.
func spin(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}
