// Linear axis stepper control
package core

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"
)

// PulseGenerator produces counted square-wave step pulses on the step pin.
// Pulse returns once the pulses are queued to hardware, not once they have
// been emitted.
type PulseGenerator interface {
	SetPeriod(period time.Duration) error
	Pulse(count uint32)
}

// Stepper tracks one axis driven by a step/dir motor driver. Position is
// commanded steps since boot; the encoder provides the measured truth.
type Stepper struct {
	pulses PulseGenerator
	setDir func(forward bool)

	position int32 // atomic, signed steps from boot
}

// NewStepper creates a stepper over a pulse generator and a direction-pin
// setter.
func NewStepper(pulses PulseGenerator, setDir func(forward bool)) *Stepper {
	return &Stepper{pulses: pulses, setDir: setDir}
}

// SetSpeed sets the step rate in steps per second.
func (st *Stepper) SetSpeed(stepsPerSec uint32) error {
	if stepsPerSec == 0 {
		return errors.New("stepper: speed must be > 0")
	}
	return st.pulses.SetPeriod(time.Second / time.Duration(stepsPerSec))
}

// Move queues a relative move. Negative deltas reverse the direction pin.
func (st *Stepper) Move(delta int32) {
	if delta == 0 {
		return
	}

	count := uint32(delta)
	forward := true
	if delta < 0 {
		count = uint32(-delta)
		forward = false
	}

	st.setDir(forward)
	st.pulses.Pulse(count)
	atomic.AddInt32(&st.position, delta)
}

// Position returns commanded steps since boot.
func (st *Stepper) Position() int32 {
	return atomic.LoadInt32(&st.position)
}

// RegisterCommands registers the stepper's debug shell commands.
func (st *Stepper) RegisterCommands(sh *Shell) {
	sh.Register("move", "Move the axis by <steps>", func(w io.Writer, args []string) error {
		if len(args) != 1 {
			return errors.New("usage: move <steps>")
		}
		delta, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("move: bad step count %q", args[0])
		}
		st.Move(int32(delta))
		fmt.Fprintf(w, "%d\r\n", st.Position())
		return nil
	})

	sh.Register("pos", "Commanded axis position in steps", func(w io.Writer, args []string) error {
		fmt.Fprintf(w, "%d\r\n", st.Position())
		return nil
	})
}
