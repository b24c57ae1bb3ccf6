package neopixel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/callebjorkell/ws2812/internal/ws2812"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInterrupted is returned by Run when another caller took over the chain.
	ErrInterrupted = errors.New("neopixel: program was interrupted")

	// ErrClosed is returned when playing on a closed controller.
	ErrClosed = errors.New("neopixel: controller is closed")
)

// LedController owns one LED chain and plays programs on it, one at a time.
type LedController struct {
	mu      sync.Mutex
	dev     ws2812.Device
	binding ws2812.Binding
	count   uint16
	onFrame func(*ws2812.Device)
	closed  bool

	queue   Queue
	running sync.WaitGroup
}

type Option func(*LedController)

// WithFrameHook calls f after every successful device operation, while the
// controller still holds the device.
func WithFrameHook(f func(*ws2812.Device)) Option {
	return func(l *LedController) {
		l.onFrame = f
	}
}

// NewLedController initializes the chain with every LED off and powers it on.
func NewLedController(b ws2812.Binding, count uint16, opts ...Option) (*LedController, error) {
	l := &LedController{
		binding: b,
		count:   count,
	}
	for _, o := range opts {
		o(l)
	}

	err := l.do(func(d *ws2812.Device) error {
		return d.Init(b, count, ws2812.NoInit, true, ws2812.NoUpdate)
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Run plays prog until ctx is done or another caller takes over the chain.
// The chain is reinitialized with the program's Init, so every program starts
// from its own first frame.
func (l *LedController) Run(ctx context.Context, prog Program) error {
	return l.run(ctx, prog, l.queue.Acquire())
}

func (l *LedController) run(ctx context.Context, prog Program, release Release) error {
	defer release()

	log.Infof("Playing %s", prog.Name)
	err := l.do(func(d *ws2812.Device) error {
		if l.closed {
			return ErrClosed
		}
		return d.Init(l.binding, l.count, prog.Init, true, prog.Update)
	})
	if err != nil {
		return err
	}

	tick := time.NewTicker(prog.Period)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			// fall out of the select and send the next frame.
		}

		if l.queue.Interrupted() {
			log.Debugf("%s interrupted", prog.Name)
			return ErrInterrupted
		}

		err := l.do(func(d *ws2812.Device) error {
			return d.Update(prog.Update)
		})
		if err != nil {
			return err
		}
	}
}

// Start plays prog in the background. Whatever was playing is interrupted,
// and Start returns once prog owns the chain.
func (l *LedController) Start(ctx context.Context, prog Program) {
	release := l.queue.Acquire()
	l.running.Add(1)
	go func() {
		defer l.running.Done()

		err := l.run(ctx, prog, release)
		switch {
		case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled), errors.Is(err, ErrClosed):
			log.Debugf("Stopped %s: %v", prog.Name, err)
		case err != nil:
			log.Warnf("Program %s failed: %v", prog.Name, err)
		}
	}()
}

// Stop interrupts the running program, if any, and waits for it to step aside.
func (l *LedController) Stop() {
	release := l.queue.Acquire()
	release()
}

// Colors returns the colors last sent to the chain.
func (l *LedController) Colors() []ws2812.Color {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dev.Colors()
}

// Iteration returns the number of frames sent since the current program started.
func (l *LedController) Iteration() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dev.Iteration()
}

// Close stops any program, powers the chain down and releases its pins.
// Programs started afterwards fail with ErrClosed.
func (l *LedController) Close() error {
	release := l.queue.Acquire()
	err := l.do(func(d *ws2812.Device) error {
		l.closed = true
		if !d.Initialized() {
			return nil
		}
		return d.Uninit()
	})
	release()

	l.running.Wait()
	return err
}

func (l *LedController) do(f func(d *ws2812.Device) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := f(&l.dev); err != nil {
		return err
	}
	if l.onFrame != nil {
		l.onFrame(&l.dev)
	}
	return nil
}
