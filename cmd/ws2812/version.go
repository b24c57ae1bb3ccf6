package main

import "fmt"

var (
	buildTime    = "unknown"
	buildVersion = "dev"
)

func showVersion() {
	fmt.Printf("ws2812 %s (built: %s)\n", buildVersion, buildTime)
}
