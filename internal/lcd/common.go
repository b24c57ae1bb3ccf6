// Package lcd drives a 16x2 HD44780 character display in 4 bit mode. The
// controller shows the program that is playing on it.
package lcd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth   = 16
	character   = gpio.High
	command     = gpio.Low
	signalPulse = 500 * time.Microsecond
	signalDelay = 500 * time.Microsecond
)

// Pins names the GPIOs the display is wired to. An empty RS means there is no
// display.
type Pins struct {
	RS   string    `yaml:"rs"`
	E    string    `yaml:"e"`
	Data [4]string `yaml:"data"`
}

func (p Pins) Enabled() bool {
	return p.RS != ""
}

// Display is an HD44780 on four data lines. A Display without pins only logs
// what it would have shown.
type Display struct {
	rs    gpio.PinIO
	e     gpio.PinIO
	data  [4]gpio.PinIO
	sleep func(time.Duration)
}

// New returns a display on the given pins. Call Init before printing.
func New(rs, e gpio.PinIO, data [4]gpio.PinIO) *Display {
	return &Display{rs: rs, e: e, data: data, sleep: time.Sleep}
}

// Init puts the controller in 4 bit, two line mode and clears it.
func (d *Display) Init() {
	log.Infoln("Initializing LCD")
	d.sendByte(0x33, command)
	d.sendByte(0x32, command)
	d.sendByte(0x28, command)
	d.sendByte(0x0C, command)
	d.sendByte(0x06, command)
	d.sendByte(0x01, command)
}

// PrintLine replaces the line with msg, cut or padded to the display width.
func (d *Display) PrintLine(l Line, msg string) {
	log.Debugf("lcd %v: %q", l, msg)
	d.sendByte(byte(l), command)
	m := fmt.Sprintf("%-16s", msg)
	for i := 0; i < lineWidth; i++ {
		d.sendByte(m[i], character)
	}
}

func (d *Display) Clear(l Line) {
	d.PrintLine(l, "")
}

func (d *Display) ClearAll() {
	d.Clear(Line1)
	d.Clear(Line2)
}

func (d *Display) sendByte(bits byte, mode gpio.Level) {
	if d.rs == nil {
		return
	}
	if err := d.rs.Out(mode); err != nil {
		log.Warnf("lcd: register select: %v", err)
	}
	d.pulseNibble(bits, 0x10)
	d.pulseNibble(bits, 0x01)
}

func (d *Display) pulseNibble(bits, mask byte) {
	for i, pin := range d.data {
		l := gpio.Low
		if bits&(mask<<uint(i)) != 0 {
			l = gpio.High
		}
		if err := pin.Out(l); err != nil {
			log.Warnf("lcd: data %d: %v", i, err)
		}
	}
	d.sleep(signalDelay)
	d.strobe(gpio.High)
	d.sleep(signalPulse)
	d.strobe(gpio.Low)
	d.sleep(signalDelay)
}

func (d *Display) strobe(l gpio.Level) {
	if err := d.e.Out(l); err != nil {
		log.Warnf("lcd: enable: %v", err)
	}
}
