//go:build tinygo && rp2040

package main

import "machine"

const (
	powerPin = machine.GP14
	dataPin  = machine.GP15
)
