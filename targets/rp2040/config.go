//go:build rp2040

package main

import "machine"

// Board wiring for the linear rig control board.
const (
	encoderSCK = machine.GPIO2
	encoderSDO = machine.GPIO3 // board -> sensor
	encoderSDI = machine.GPIO4 // sensor -> board
	encoderCS  = machine.GPIO5 // active low

	stepPin = machine.GPIO10
	dirPin  = machine.GPIO11

	heartbeatLED = machine.LED
)

const (
	// Sensor bus: 1MHz, MSB first, SPI mode 1 (clock idles low, data
	// sampled on the falling edge).
	encoderSPIRate = 1000000
	encoderSPIMode = 1

	// Bit-bang the sensor bus on the same pins instead of using SPI0.
	encoderUseSoftSPI = false

	defaultStepRate = 2000 // steps per second
)
