package hal

import (
	"sync"
	"time"
)

// Register identifies which register an Event wrote.
type Register uint8

const (
	RegDirection Register = iota
	RegOutput
)

func (r Register) String() string {
	switch r {
	case RegDirection:
		return "DDR"
	case RegOutput:
		return "PORT"
	}
	return "N/A"
}

// Event is a single register write seen by a Sim.
type Event struct {
	At       time.Duration
	Register Register
	Value    uint8
}

// Sim is a simulated 8 bit port with a virtual clock. Delays advance the clock
// instead of sleeping and every register write is recorded with the time it
// happened at, so the waveform can be decoded afterwards.
type Sim struct {
	mu     sync.Mutex
	dir    uint8
	out    uint8
	now    time.Duration
	events []Event
}

func NewSim() *Sim {
	return &Sim{}
}

func (s *Sim) SetDirection(mask uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dir = mask
	s.events = append(s.events, Event{At: s.now, Register: RegDirection, Value: mask})
}

func (s *Sim) WriteOutput(value uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out = value
	s.events = append(s.events, Event{At: s.now, Register: RegOutput, Value: value})
}

func (s *Sim) ReadOutput() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.out
}

// Delay advances the virtual clock by d.
func (s *Sim) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now += d
}

func (s *Sim) Direction() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dir
}

func (s *Sim) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.now
}

// Events returns a copy of the recorded writes.
func (s *Sim) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := make([]Event, len(s.events))
	copy(e, s.events)
	return e
}

// Reset drops the recorded writes. Registers and clock are kept.
func (s *Sim) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
}

// Pulses returns the high pulses recorded on pin so far.
func (s *Sim) Pulses(pin uint8) []Pulse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Pulses(s.events, pin, s.now)
}

// Frames decodes the frames recorded on pin so far.
func (s *Sim) Frames(pin uint8, dec Decoder) ([][]byte, error) {
	return dec.Frames(s.Pulses(pin))
}
