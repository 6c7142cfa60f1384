// Interactive debug shell
// Line-oriented command console served over the board's serial port
package core

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/shlex"
)

const shellPrompt = "> "

// ShellFunc handles one invocation of a shell command. args holds the
// tokens after the command name.
type ShellFunc func(w io.Writer, args []string) error

type shellCommand struct {
	name string
	help string
	run  ShellFunc
}

// Shell is a registry of debug commands plus the line editor state for a
// byte-at-a-time serial console. Registration may happen from any context;
// input bytes are fed from the single main-loop context.
type Shell struct {
	mu       sync.RWMutex
	commands map[string]*shellCommand
	order    []string

	line []byte
}

// NewShell creates an empty shell.
func NewShell() *Shell {
	return &Shell{commands: make(map[string]*shellCommand)}
}

// Register adds a command. Registering a name twice replaces the handler
// but keeps the original help ordering.
func (sh *Shell) Register(name, help string, run ShellFunc) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.commands[name]; !exists {
		sh.order = append(sh.order, name)
	}
	sh.commands[name] = &shellCommand{name: name, help: help, run: run}
}

// Exec tokenizes and runs one command line.
func (sh *Shell) Exec(w io.Writer, line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	sh.mu.RLock()
	cmd, ok := sh.commands[tokens[0]]
	sh.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown command: %s", tokens[0])
	}

	return cmd.run(w, tokens[1:])
}

// Greet prints the banner and the first prompt.
func (sh *Shell) Greet(w io.Writer) {
	io.WriteString(w, "=== rham debug shell ===\r\n")
	io.WriteString(w, "Type 'help' for commands\r\n")
	io.WriteString(w, shellPrompt)
}

// RxByte feeds one byte of console input through the line editor, echoing
// as it goes. Completed lines are executed and errors printed to w.
func (sh *Shell) RxByte(w io.Writer, c byte) {
	switch {
	case c == '\r' || c == '\n':
		io.WriteString(w, "\r\n")
		line := strings.TrimSpace(string(sh.line))
		sh.line = sh.line[:0]
		if line != "" {
			if err := sh.Exec(w, line); err != nil {
				fmt.Fprintf(w, "%v\r\n", err)
			}
		}
		io.WriteString(w, shellPrompt)

	case c == 0x08 || c == 0x7f: // backspace / delete
		if len(sh.line) > 0 {
			sh.line = sh.line[:len(sh.line)-1]
			io.WriteString(w, "\b \b")
		}

	case c >= 0x20 && c < 0x7f:
		sh.line = append(sh.line, c)
		w.Write([]byte{c})
	}
}

// RegisterSystemCommands registers the built-in commands every board gets.
func RegisterSystemCommands(sh *Shell, clk Clock) {
	sh.Register("help", "List available commands", func(w io.Writer, args []string) error {
		sh.mu.RLock()
		defer sh.mu.RUnlock()
		for _, name := range sh.order {
			fmt.Fprintf(w, "%-8s %s\r\n", name, sh.commands[name].help)
		}
		return nil
	})

	sh.Register("uptime", "Milliseconds since boot", func(w io.Writer, args []string) error {
		fmt.Fprintf(w, "%d\r\n", clk.Millis())
		return nil
	})
}
