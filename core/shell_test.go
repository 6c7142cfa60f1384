package core

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestShellExec(t *testing.T) {
	sh := NewShell()

	var gotArgs []string
	sh.Register("echo", "Echo arguments", func(w io.Writer, args []string) error {
		gotArgs = args
		io.WriteString(w, "ok\r\n")
		return nil
	})

	var out bytes.Buffer
	if err := sh.Exec(&out, `echo one "two words"`); err != nil {
		t.Fatalf("Exec err=%v", err)
	}

	if len(gotArgs) != 2 || gotArgs[0] != "one" || gotArgs[1] != "two words" {
		t.Errorf("args = %q, want [one, two words]", gotArgs)
	}
	if out.String() != "ok\r\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestShellExecEmptyLine(t *testing.T) {
	sh := NewShell()
	var out bytes.Buffer
	if err := sh.Exec(&out, "   "); err != nil {
		t.Errorf("empty line err=%v, want nil", err)
	}
}

func TestShellUnknownCommand(t *testing.T) {
	sh := NewShell()
	var out bytes.Buffer
	err := sh.Exec(&out, "nope")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q does not name the command", err.Error())
	}
}

func TestShellHelpListsCommands(t *testing.T) {
	sh := NewShell()
	RegisterSystemCommands(sh, &fakeClock{now: 42})

	var out bytes.Buffer
	if err := sh.Exec(&out, "help"); err != nil {
		t.Fatalf("help err=%v", err)
	}
	for _, name := range []string{"help", "uptime"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help output missing %q:\n%s", name, out.String())
		}
	}
}

func TestShellUptime(t *testing.T) {
	sh := NewShell()
	RegisterSystemCommands(sh, &fakeClock{now: 12345})

	var out bytes.Buffer
	if err := sh.Exec(&out, "uptime"); err != nil {
		t.Fatalf("uptime err=%v", err)
	}
	if out.String() != "12345\r\n" {
		t.Errorf("uptime output = %q, want 12345\\r\\n", out.String())
	}
}

func TestShellMagCommand(t *testing.T) {
	bus := &fakeTransport{raw: 0x8000}
	s := NewEncoderSampler(bus, &fakeClock{})
	s.Init()
	transfersAfterInit := bus.transfers

	sh := NewShell()
	s.RegisterCommands(sh)

	var out bytes.Buffer
	if err := sh.Exec(&out, "mag"); err != nil {
		t.Fatalf("mag err=%v", err)
	}
	if out.String() != "512\r\n" {
		t.Errorf("mag output = %q, want 512\\r\\n", out.String())
	}
	if bus.transfers != transfersAfterInit {
		t.Errorf("mag triggered bus traffic: %d transfers", bus.transfers-transfersAfterInit)
	}
}

func TestShellRxByteLineEditing(t *testing.T) {
	sh := NewShell()
	ran := false
	sh.Register("go", "", func(w io.Writer, args []string) error {
		ran = true
		return nil
	})

	var out bytes.Buffer
	// Type "gx", backspace, "o", enter.
	for _, c := range []byte{'g', 'x', 0x7f, 'o', '\r'} {
		sh.RxByte(&out, c)
	}

	if !ran {
		t.Error("command did not run after line editing")
	}
	if !strings.Contains(out.String(), "\b \b") {
		t.Error("backspace was not echoed")
	}
	if !strings.HasSuffix(out.String(), shellPrompt) {
		t.Errorf("prompt not reprinted, output = %q", out.String())
	}
}

func TestShellRxByteReportsErrors(t *testing.T) {
	sh := NewShell()
	var out bytes.Buffer
	for _, c := range []byte("bogus\r") {
		sh.RxByte(&out, c)
	}
	if !strings.Contains(out.String(), "unknown command: bogus") {
		t.Errorf("error not printed, output = %q", out.String())
	}
}
