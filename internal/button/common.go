package button

import (
	"context"
	"fmt"
)

// Event is a change of the selector button.
type Event struct {
	Pressed bool
}

func (e Event) String() string {
	action := "pressed"
	if !e.Pressed {
		action = "released"
	}
	return fmt.Sprintf("Button was %v", action)
}

// Presses filters events down to presses, which is all a program selector
// cares about. The channel is closed when events is closed or ctx is done.
func Presses(ctx context.Context, events <-chan Event) <-chan struct{} {
	c := make(chan struct{})
	go func() {
		defer close(c)
		for {
			select {
			case e, ok := <-events:
				if !ok {
					return
				}
				if !e.Pressed {
					continue
				}
				select {
				case c <- struct{}{}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return c
}
