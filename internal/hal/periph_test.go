//go:build !tinygo

package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestPeriphPort(t *testing.T) {
	power := &gpiotest.Pin{N: "GPIO17", Num: 17}
	data := &gpiotest.Pin{N: "GPIO18", Num: 18}

	p, err := NewPeriphPort(map[uint8]gpio.PinIO{0: power, 1: data})
	require.NoError(t, err)

	p.SetDirection(0x03)
	p.WriteOutput(0x01)
	assert.Equal(t, gpio.High, power.Read())
	assert.Equal(t, gpio.Low, data.Read())

	p.WriteOutput(0x03)
	assert.Equal(t, gpio.High, data.Read())
	assert.Equal(t, uint8(0x03), p.ReadOutput())

	p.WriteOutput(0x00)
	assert.Equal(t, gpio.Low, power.Read())
	assert.Equal(t, gpio.Low, data.Read())

	require.NoError(t, p.Halt())
}

func TestPeriphPortInputsIgnoreWrites(t *testing.T) {
	data := &gpiotest.Pin{N: "GPIO18", Num: 18}

	p, err := NewPeriphPort(map[uint8]gpio.PinIO{1: data})
	require.NoError(t, err)

	p.WriteOutput(0x02)
	assert.Equal(t, gpio.Low, data.Read())
	assert.Equal(t, uint8(0x02), p.ReadOutput())

	// becoming an output drives the latched value
	p.SetDirection(0x02)
	assert.Equal(t, gpio.High, data.Read())
}

func TestNewPeriphPortErrors(t *testing.T) {
	_, err := NewPeriphPort(map[uint8]gpio.PinIO{8: &gpiotest.Pin{N: "GPIO8"}})
	assert.Error(t, err)

	_, err = NewPeriphPort(map[uint8]gpio.PinIO{0: nil})
	assert.Error(t, err)
}
