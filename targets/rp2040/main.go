//go:build rp2040

// Control board firmware for the linear actuator rig: magnetic encoder
// sampling, a PIO-driven stepper axis, and a debug shell on the serial
// console.
package main

import (
	"machine"
	"time"

	"rham/core"
)

func main() {
	// Let USB-CDC enumerate before the banner goes out.
	time.Sleep(500 * time.Millisecond)

	clk := newBootClock()
	sched := core.NewScheduler()
	scheduleHeartbeat(sched, clk)

	var bus core.EncoderTransport
	if encoderUseSoftSPI {
		bus = newSoftEncoderBus()
	} else {
		bus = newEncoderBus()
	}

	sampler := core.NewEncoderSampler(bus, clk)
	sampler.Init()

	sh := core.NewShell()
	core.RegisterSystemCommands(sh, clk)
	sampler.RegisterCommands(sh)

	if pulses, err := newPIOPulses(stepPin); err == nil {
		dirPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		stepper := core.NewStepper(pulses, dirPin.Set)
		_ = stepper.SetSpeed(defaultStepRate)
		stepper.RegisterCommands(sh)
	}

	console := machine.Serial
	sh.Greet(console)

	for {
		sched.Dispatch(clk.Millis())

		// Tick runs every iteration; its millisecond gate bounds bus
		// traffic no matter how fast this loop spins.
		sampler.Tick()

		for console.Buffered() > 0 {
			c, err := console.ReadByte()
			if err != nil {
				break
			}
			sh.RxByte(console, c)
		}
	}
}
