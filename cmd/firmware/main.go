//go:build tinygo

// Command firmware plays the blink program on a microcontroller. The chain's
// supply is switched by powerPin and its data line is dataPin, both set per
// board.
//
//	tinygo flash -target pico ./cmd/firmware
package main

import (
	"machine"
	"time"

	"github.com/callebjorkell/ws2812/internal/hal"
	"github.com/callebjorkell/ws2812/internal/neopixel"
	"github.com/callebjorkell/ws2812/internal/ws2812"
)

const count = 8

func main() {
	port := hal.NewMachinePort(map[uint8]machine.Pin{
		0: powerPin,
		1: dataPin,
	})
	b := ws2812.Binding{Port: port, PowerPin: 0, DataPin: 1}
	prog := neopixel.Blink()

	for {
		play(b, prog)
		// give the supply a moment before trying again
		time.Sleep(time.Second)
	}
}

func play(b ws2812.Binding, prog neopixel.Program) {
	var dev ws2812.Device
	if err := dev.Init(b, count, prog.Init, true, prog.Update); err != nil {
		println("init:", err.Error())
		return
	}

	for {
		time.Sleep(prog.Period)
		if err := dev.Update(prog.Update); err != nil {
			println("update:", err.Error())
			break
		}
	}

	if err := dev.Uninit(); err != nil {
		println("uninit:", err.Error())
	}
}
