//go:build rp2040

package main

import (
	"machine"
	"time"

	"rham/core"
)

// softEncoderBus bit-bangs the sensor bus in SPI mode 1: clock idles low,
// the sensor shifts out on the rising edge and is sampled on the falling
// edge.
type softEncoderBus struct {
	sck  machine.Pin
	sdo  machine.Pin
	sdi  machine.Pin
	cs   machine.Pin
	half time.Duration // time between clock edges
}

var _ core.EncoderTransport = (*softEncoderBus)(nil)

func newSoftEncoderBus() *softEncoderBus {
	b := &softEncoderBus{
		sck:  encoderSCK,
		sdo:  encoderSDO,
		sdi:  encoderSDI,
		cs:   encoderCS,
		half: time.Second / (2 * encoderSPIRate),
	}

	b.sck.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.sdo.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.sdi.Configure(machine.PinConfig{Mode: machine.PinInput})
	b.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.sck.Low()
	b.sdo.Low()
	b.cs.High()

	return b
}

// Transfer16 runs one select-transfer-deselect transaction, MSB first.
func (b *softEncoderBus) Transfer16(tx uint16) uint16 {
	var rx uint16

	b.cs.Low()
	time.Sleep(time.Microsecond) // sensor CS-to-clock setup time

	for bit := 15; bit >= 0; bit-- {
		b.sdo.Set(tx&(1<<bit) != 0)
		b.sck.High()
		time.Sleep(b.half)
		b.sck.Low()
		if b.sdi.Get() {
			rx |= 1 << bit
		}
		time.Sleep(b.half)
	}

	b.cs.High()
	return rx
}
