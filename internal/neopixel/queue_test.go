package neopixel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueueInterrupts(t *testing.T) {
	var q Queue

	release := q.Acquire()
	assert.False(t, q.Interrupted())

	acquired := make(chan Release)
	go func() {
		acquired <- q.Acquire()
	}()

	assert.Eventually(t, q.Interrupted, time.Second, time.Millisecond)

	release()
	release()

	select {
	case r := <-acquired:
		assert.False(t, q.Interrupted())
		r()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the queue")
	}
}
