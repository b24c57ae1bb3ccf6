//go:build tinygo && arduino

package main

import "machine"

const (
	powerPin = machine.D8
	dataPin  = machine.D9
)
