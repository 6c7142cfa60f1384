package serial

import (
	"io"
)

// Port represents a serial port connection to the control board.
// The abstraction keeps the console testable against an in-memory pipe.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a configuration for the rig's USB console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
