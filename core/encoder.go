// Magnetic rotary encoder sampler
// Polls a 10-bit absolute encoder over SPI and caches the last decoded angle
package core

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Angle field framing within the 16-bit transfer.
// The sensor clocks out the 10-bit angle in bits 15..6; the low 6 bits are
// the status/parity trailer and are discarded without validation.
const (
	angleShift = 6
	AngleMask  = 0x3FF
)

// EncoderTransport performs one select-transfer-deselect transaction against
// the sensor: assert chip select, wait the sensor's setup time, clock tx out
// while capturing the 16 bits clocked back, deassert chip select.
//
// A failed transfer returns whatever ended up in the receive register. The
// sampler caches it as-is; there is no detection or retry at this layer.
type EncoderTransport interface {
	Transfer16(tx uint16) uint16
}

// DecodeAngle extracts the 10-bit angle field from a raw 16-bit transfer.
func DecodeAngle(raw uint16) uint16 {
	return (raw >> angleShift) & AngleMask
}

// EncoderSampler owns the cached encoder state for one physical sensor.
// Init performs one unconditional sample; after that, Tick samples at most
// once per millisecond no matter how often the main loop calls it.
type EncoderSampler struct {
	bus EncoderTransport
	clk Clock

	// Millisecond timestamp of the last physical sample. Only the tick
	// context writes this; the zero value makes the first Tick at millis 0
	// a no-op, same as the strictly-greater compare always has.
	lastSample uint32

	// Last decoded angle. Read from the shell context while the tick
	// context updates it, hence atomic.
	angle uint32
}

// NewEncoderSampler creates a sampler over the given transport and clock.
// The caller must invoke Init before the first Read.
func NewEncoderSampler(bus EncoderTransport, clk Clock) *EncoderSampler {
	return &EncoderSampler{bus: bus, clk: clk}
}

// Init populates the angle cache with one unconditional physical sample so
// that Read never observes a value that did not come from the sensor.
func (s *EncoderSampler) Init() {
	s.sample()
}

// Tick is called every main-loop iteration. It performs a physical sample
// only when the millisecond clock has advanced past the last sample time,
// bounding bus traffic to one transaction per millisecond regardless of
// loop rate.
func (s *EncoderSampler) Tick() {
	now := s.clk.Millis()
	if now > s.lastSample {
		s.lastSample = now
		s.sample()
	}
}

// Read returns the cached angle without performing any I/O. Safe to call
// from the shell context at any frequency.
func (s *EncoderSampler) Read() uint16 {
	return uint16(atomic.LoadUint32(&s.angle))
}

// sample performs one sample-and-decode cycle and overwrites the cache.
func (s *EncoderSampler) sample() {
	raw := s.bus.Transfer16(0)
	atomic.StoreUint32(&s.angle, uint32(DecodeAngle(raw)))
}

// RegisterCommands registers the encoder's debug shell commands.
func (s *EncoderSampler) RegisterCommands(sh *Shell) {
	sh.Register("mag", "Read the magnetic encoder", func(w io.Writer, args []string) error {
		fmt.Fprintf(w, "%d\r\n", s.Read())
		return nil
	})
}
