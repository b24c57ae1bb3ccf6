//go:build !pi

package button

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// Init simulates the button with SIGHUP: every signal is a press. The pin name
// is ignored. The channel is closed when ctx is done.
func Init(ctx context.Context, name string) (<-chan Event, error) {
	log.Infof("Simulating button %s with SIGHUP", name)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	c := make(chan Event, 5)
	go simulateButton(ctx, hup, c)
	return c, nil
}

func simulateButton(ctx context.Context, hup chan os.Signal, c chan<- Event) {
	defer close(c)
	defer signal.Stop(hup)

	for {
		select {
		case <-hup:
			for _, e := range []Event{{Pressed: true}, {Pressed: false}} {
				select {
				case c <- e:
				case <-ctx.Done():
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}
