package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env"
	"github.com/callebjorkell/ws2812/internal/lcd"
	"github.com/callebjorkell/ws2812/internal/neopixel"
	"github.com/callebjorkell/ws2812/internal/ws2812"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultCount    = 8
	defaultPowerPin = "GPIO17"
	defaultDataPin  = "GPIO18"
	defaultButton   = "GPIO20"
	defaultProgram  = "blink"

	portSim    = "sim"
	portPeriph = "periph"
)

// Config describes the chain. Every field but the display can be overridden
// from the environment.
type Config struct {
	Port     string `yaml:"port" env:"WS2812_PORT"`
	Count    int    `yaml:"count" env:"WS2812_COUNT"`
	PowerPin string `yaml:"powerPin" env:"WS2812_POWER_PIN"`
	DataPin  string `yaml:"dataPin" env:"WS2812_DATA_PIN"`
	Button   string `yaml:"button" env:"WS2812_BUTTON"`
	Program  string `yaml:"program" env:"WS2812_PROGRAM"`

	LCD lcd.Pins `yaml:"lcd"`
}

func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No config file at %s, using defaults", path)
		content = nil
	} else if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}
	err = env.Parse(c)
	if err != nil {
		return nil, err
	}

	if c.Port == "" {
		c.Port = neopixel.DefaultPort
	}
	if c.Count == 0 {
		c.Count = defaultCount
	}
	if c.PowerPin == "" {
		c.PowerPin = defaultPowerPin
	}
	if c.DataPin == "" {
		c.DataPin = defaultDataPin
	}
	if c.Button == "" {
		c.Button = defaultButton
	}
	if c.Program == "" {
		c.Program = defaultProgram
	}

	if c.Port != portSim && c.Port != portPeriph {
		return nil, fmt.Errorf("port must be %q or %q, not %q", portSim, portPeriph, c.Port)
	}
	if c.Count < 1 || c.Count > ws2812.MaxCount {
		return nil, fmt.Errorf("count must be between 1 and %d, not %d", ws2812.MaxCount, c.Count)
	}
	if c.PowerPin == c.DataPin {
		return nil, fmt.Errorf("power and data cannot share pin %s", c.DataPin)
	}
	if c.LCD.Enabled() {
		if c.LCD.E == "" {
			return nil, errors.New("lcd needs an enable pin")
		}
		for i, d := range c.LCD.Data {
			if d == "" {
				return nil, fmt.Errorf("lcd data pin %d is missing", i+4)
			}
		}
	}
	if _, ok := neopixel.Lookup(c.Program); !ok {
		return nil, fmt.Errorf("unknown program %q", c.Program)
	}

	return c, nil
}
