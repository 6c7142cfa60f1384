//go:build rp2040

package main

import (
	"machine"
	"time"

	"rham/core"
)

// bootClock reports milliseconds since bring-up.
type bootClock struct {
	start time.Time
}

var _ core.Clock = (*bootClock)(nil)

func newBootClock() *bootClock {
	return &bootClock{start: time.Now()}
}

func (c *bootClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// scheduleHeartbeat toggles the status LED every 500ms so a stalled main
// loop is visible on the board.
func scheduleHeartbeat(sched *core.Scheduler, clk core.Clock) {
	led := heartbeatLED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	on := false
	task := &core.Task{WakeTime: clk.Millis() + 500}
	task.Handler = func(t *core.Task) uint8 {
		on = !on
		led.Set(on)
		t.WakeTime += 500
		return core.TaskReschedule
	}
	sched.Schedule(task)
}
