// rham-console attaches a terminal to the rig's debug shell over the
// board's USB serial port.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"rham/host/console"
	"rham/host/serial"
)

var (
	configPath = flag.String("config", "", "YAML config file (optional)")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
)

func main() {
	flag.Parse()

	var cfg *console.Config
	var err error
	if *configPath != "" {
		cfg, err = console.LoadConfig(*configPath)
	} else {
		cfg, err = console.ParseConfig([]byte("console: {}\n"))
	}
	if err != nil {
		log.Fatal(err)
	}

	if *device != "" {
		cfg.Console.Device = *device
	}
	if *baud != 0 {
		cfg.Console.Baud = *baud
	}

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Console.Device,
		Baud:        cfg.Console.Baud,
		ReadTimeout: cfg.Console.ReadTimeoutMs,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	fmt.Printf("Connected to %s (type 'quit' to exit)\n", cfg.Console.Device)

	// Board output straight to the terminal.
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := port.Read(buf)
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
			if err != nil && err != io.EOF {
				return
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}

		if _, err := port.Write([]byte(line + "\r\n")); err != nil {
			log.Fatalf("write: %v", err)
		}
	}
}
