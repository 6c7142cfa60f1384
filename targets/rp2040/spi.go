//go:build rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers"

	"rham/core"
)

// encoderBus drives the sensor over hardware SPI0 with explicit
// chip-select handling.
type encoderBus struct {
	spi drivers.SPI
	cs  machine.Pin
}

var _ core.EncoderTransport = (*encoderBus)(nil)

// newEncoderBus configures SPI0 for the sensor and parks the chip-select
// line deasserted. A bus that failed to configure reads back garbage,
// which the sampler caches as-is; nothing at this layer reports it.
func newEncoderBus() *encoderBus {
	spi := machine.SPI0
	_ = spi.Configure(machine.SPIConfig{
		Frequency: encoderSPIRate,
		SCK:       encoderSCK,
		SDO:       encoderSDO,
		SDI:       encoderSDI,
		Mode:      encoderSPIMode,
	})

	encoderCS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	encoderCS.High()

	return &encoderBus{spi: spi, cs: encoderCS}
}

// Transfer16 runs one select-transfer-deselect transaction, MSB first.
func (b *encoderBus) Transfer16(tx uint16) uint16 {
	w := [2]byte{byte(tx >> 8), byte(tx)}
	var r [2]byte

	b.cs.Low()
	time.Sleep(time.Microsecond) // sensor CS-to-clock setup time
	b.spi.Tx(w[:], r[:])
	b.cs.High()

	return uint16(r[0])<<8 | uint16(r[1])
}
