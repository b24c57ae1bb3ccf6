/*
Package ws2812 drives a chain of WS2812 addressable RGB LEDs by bit-banging a
single GPIO data pin.

A Device is the driver context. Its zero value is unbound; Init binds it to a
Port and a pair of pins, PowerOn switches the chain's supply and sends the
first frame, and every Update runs an Updater over the buffer and sends the
whole chain again. Uninit powers down and returns the Device to its zero value.

	var dev ws2812.Device
	err := dev.Init(ws2812.Binding{Port: port, PowerPin: 0, DataPin: 1}, 8,
		ws2812.Fill(ws2812.RGB(0x0000ff)), true, ws2812.NoUpdate)

Transmission is timed by the CPU. Interrupts are held off for the length of a
frame, so the cost of a frame (about 30µs per LED plus the 50µs latch) is time
the rest of the program cannot run.

A Device is not safe for concurrent use.
*/
package ws2812
