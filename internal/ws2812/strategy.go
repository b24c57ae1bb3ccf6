package ws2812

// Initializer sets the starting color of one LED. It is called once per LED,
// in index order, during Init.
type Initializer interface {
	InitLED(c *Color, index uint16) error
}

// Updater computes the next color of one LED. It is called once per LED, in
// index order, before every frame. iteration counts the frames sent so far.
//
// The pointer is only valid for the duration of the call.
type Updater interface {
	UpdateLED(c *Color, index uint16, iteration uint32) error
}

// InitFunc adapts a function to an Initializer.
type InitFunc func(c *Color, index uint16) error

func (f InitFunc) InitLED(c *Color, index uint16) error {
	return f(c, index)
}

// UpdateFunc adapts a function to an Updater.
type UpdateFunc func(c *Color, index uint16, iteration uint32) error

func (f UpdateFunc) UpdateLED(c *Color, index uint16, iteration uint32) error {
	return f(c, index, iteration)
}

type keep struct{}

func (keep) InitLED(*Color, uint16) error           { return nil }
func (keep) UpdateLED(*Color, uint16, uint32) error { return nil }

var (
	// NoInit leaves every LED off.
	NoInit Initializer = keep{}

	// NoUpdate sends the buffer as it is.
	NoUpdate Updater = keep{}
)

// Fill returns an Initializer that sets every LED to c.
func Fill(c Color) Initializer {
	return InitFunc(func(led *Color, _ uint16) error {
		*led = c
		return nil
	})
}
