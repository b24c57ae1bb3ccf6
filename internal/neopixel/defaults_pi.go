//go:build pi

package neopixel

// DefaultPort is the kind of port used when the configuration names none.
const DefaultPort = "periph"
