package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/ws2812/internal/button"
	"github.com/callebjorkell/ws2812/internal/hal"
	"github.com/callebjorkell/ws2812/internal/lcd"
	"github.com/callebjorkell/ws2812/internal/neopixel"
	"github.com/callebjorkell/ws2812/internal/ws2812"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	powerBit = 0
	dataBit  = 1
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	log.SetFormatter(&colorFormatter{})

	if err := RootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// openChain binds the chain to the configured port. The returned function
// releases the port.
func openChain(conf *Config) (ws2812.Binding, []neopixel.Option, func(), error) {
	if conf.Port == portSim {
		sim := hal.NewSim()
		b := ws2812.Binding{Port: sim, PowerPin: powerBit, DataPin: dataBit}
		return b, []neopixel.Option{neopixel.LogFrames(sim, dataBit)}, func() {}, nil
	}

	port, err := hal.OpenPeriphPort(map[uint8]string{
		powerBit: conf.PowerPin,
		dataBit:  conf.DataPin,
	})
	if err != nil {
		return ws2812.Binding{}, nil, nil, err
	}
	release := func() {
		if err := port.Halt(); err != nil {
			log.Warnf("Unable to release pins: %v", err)
		}
	}
	return ws2812.Binding{Port: port, PowerPin: powerBit, DataPin: dataBit}, nil, release, nil
}

func runPrograms(conf *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, opts, release, err := openChain(conf)
	if err != nil {
		return err
	}
	defer release()

	led, err := neopixel.NewLedController(b, uint16(conf.Count), opts...)
	if err != nil {
		return err
	}

	programs := neopixel.Programs()
	current := 0
	for i, p := range programs {
		if p.Name == conf.Program {
			current = i
		}
	}

	display := &lcd.Display{}
	if conf.LCD.Enabled() {
		if display, err = lcd.Open(conf.LCD); err != nil {
			led.Close()
			return err
		}
		defer display.ClearAll()
	}
	display.PrintLine(lcd.Line1, "Playing")

	events, err := button.Init(ctx, conf.Button)
	if err != nil {
		led.Close()
		return err
	}
	presses := button.Presses(ctx, events)

	display.PrintLine(lcd.Line2, programs[current].Name)
	led.Start(ctx, programs[current])
	for {
		select {
		case _, ok := <-presses:
			if !ok {
				presses = nil
				continue
			}
			current = (current + 1) % len(programs)
			log.Infof("Switching to %s", programs[current].Name)
			if err := led.Flash(ws2812.RGB(0xffffff)); err != nil {
				log.Warnf("Unable to flash: %v", err)
			}
			display.PrintLine(lcd.Line2, programs[current].Name)
			led.Start(ctx, programs[current])
		case <-ctx.Done():
			log.Info("Turning the lights off...")
			return led.Close()
		}
	}
}

func listPrograms(w io.Writer) {
	for _, p := range neopixel.Programs() {
		fmt.Fprintf(w, "%-10s every %v\n", p.Name, p.Period)
	}
}

// printFrames runs a program on a simulated chain and prints every frame it
// sends: the first from power on, then one per update.
func printFrames(w io.Writer, name string, count, updates int) error {
	prog, ok := neopixel.Lookup(name)
	if !ok {
		return errors.Errorf("unknown program %q", name)
	}

	sim := hal.NewSim()
	var dev ws2812.Device
	err := dev.Init(ws2812.Binding{Port: sim, PowerPin: powerBit, DataPin: dataBit}, uint16(count), prog.Init, true, prog.Update)
	if err != nil {
		return err
	}
	for i := 0; i < updates; i++ {
		if err := dev.Update(prog.Update); err != nil {
			return err
		}
	}
	if err := dev.Uninit(); err != nil {
		return err
	}

	frames, err := sim.Frames(dataBit, neopixel.FrameDecoder)
	if err != nil {
		return err
	}
	for i, f := range frames {
		fmt.Fprintf(w, "%4d: %s\n", i, neopixel.FormatFrame(f))
	}
	return nil
}
