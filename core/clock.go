package core

// Clock provides monotonic milliseconds since boot.
// The millisecond counter is 32-bit and wraps after ~49.7 days, matching
// the behavior of the usual MCU millis counter.
type Clock interface {
	Millis() uint32
}
