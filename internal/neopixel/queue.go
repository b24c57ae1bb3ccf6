package neopixel

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Queue hands out exclusive use of the LED chain. Asking for it marks the
// queue as interrupted, which a running program checks between frames so it
// can step aside. A frame that has started is always finished.
type Queue struct {
	mu      sync.Mutex
	waiting int
	run     sync.Mutex
}

// Release gives the chain back. Calling it more than once is harmless.
type Release func()

// Acquire waits for the chain, interrupting the current holder.
func (q *Queue) Acquire() Release {
	q.adjust(1)
	q.run.Lock()
	q.adjust(-1)

	var once sync.Once
	return func() {
		once.Do(q.run.Unlock)
	}
}

// Interrupted reports whether somebody is waiting for the chain.
func (q *Queue) Interrupted() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.waiting != 0
}

func (q *Queue) adjust(delta int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.waiting += delta
	log.Trace("Waiting for the chain: ", q.waiting)
	if q.waiting < 0 {
		log.Warn(errors.New("number waiting in queue less than zero"))
	}
}
