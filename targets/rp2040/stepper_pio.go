//go:build rp2040

package main

import (
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"rham/core"
)

// pioPulses generates counted step pulses on a PIO state machine, keeping
// step timing off the CPU.
type pioPulses struct {
	pulsar *piolib.Pulsar
}

var _ core.PulseGenerator = (*pioPulses)(nil)

func newPIOPulses(pin machine.Pin) (*pioPulses, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}

	pulsar, err := piolib.NewPulsar(sm, pin)
	if err != nil {
		return nil, err
	}

	return &pioPulses{pulsar: pulsar}, nil
}

func (p *pioPulses) SetPeriod(period time.Duration) error {
	return p.pulsar.SetPeriod(period)
}

func (p *pioPulses) Pulse(count uint32) {
	p.pulsar.Start(count)
}
