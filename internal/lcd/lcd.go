//go:build pi

package lcd

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Open looks up the display's pins and initializes it.
func Open(p Pins) (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}

	byName := func(name string) (gpio.PinIO, error) {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, errors.Errorf("no gpio named %q", name)
		}
		return pin, nil
	}

	rs, err := byName(p.RS)
	if err != nil {
		return nil, err
	}
	e, err := byName(p.E)
	if err != nil {
		return nil, err
	}
	var data [4]gpio.PinIO
	for i, name := range p.Data {
		if data[i], err = byName(name); err != nil {
			return nil, err
		}
	}

	d := New(rs, e, data)
	d.Init()
	return d, nil
}
