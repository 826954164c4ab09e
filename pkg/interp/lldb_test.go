package interp

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	e "dbgvis/error"
)

// newPipedLLDB wires an LLDB over plain pipes so tests can play the host side.
func newPipedLLDB(t *testing.T) (*LLDB, *os.File, *os.File) {
	t.Helper()

	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		stdinR.Close()
		stdinW.Close()
		outR.Close()
		outW.Close()
	})

	return &LLDB{stdin: stdinW, out: outR, timeout: time.Second}, stdinR, outW
}

func TestHandleCommand(t *testing.T) {
	l, cmdR, outW := newPipedLLDB(t)

	go func() {
		rd := bufio.NewReader(cmdR)
		line, err := rd.ReadString('\n')
		if err != nil {
			t.Errorf("host read failed: %v", err)
			return
		}
		if strings.TrimSpace(line) != "po s.vec.len" {
			t.Errorf("host received %q", line)
		}
		outW.WriteString("10\n" + prompt)
	}()

	out, err := l.HandleCommand("po s.vec.len")
	if err != nil {
		t.Fatalf("HandleCommand failed: %v", err)
	}
	if out != "10\n" {
		t.Errorf("output %q, want %q", out, "10\n")
	}
}

func TestHandleCommandHostError(t *testing.T) {
	l, _, outW := newPipedLLDB(t)

	go outW.WriteString("error: use of undeclared identifier 'q'\n" + prompt)

	_, err := l.HandleCommand("po q")
	if err == nil {
		t.Fatal("expected an error for an error: reply")
	}
	if !strings.Contains(err.Error(), "undeclared identifier") {
		t.Errorf("error %q does not carry the host diagnostic", err)
	}
}

func TestHandleCommandTimeout(t *testing.T) {
	l, _, _ := newPipedLLDB(t)
	l.timeout = 50 * time.Millisecond

	_, err := l.HandleCommand("po s.vec.len")
	if !errors.Is(err, e.CommandTimeout) {
		t.Fatalf("expected CommandTimeout, got %v", err)
	}
}

func TestHandleCommandClosed(t *testing.T) {
	l, _, _ := newPipedLLDB(t)
	l.closed = true

	_, err := l.HandleCommand("po s.vec.len")
	if !errors.Is(err, e.InterpreterClosed) {
		t.Fatalf("expected InterpreterClosed, got %v", err)
	}
}

func TestReadToPromptInChunks(t *testing.T) {
	l, _, outW := newPipedLLDB(t)

	go func() {
		outW.WriteString("41 42 43")
		time.Sleep(10 * time.Millisecond)
		outW.WriteString(" 44\n" + prompt)
	}()

	out, err := l.readToPrompt()
	if err != nil {
		t.Fatalf("readToPrompt failed: %v", err)
	}
	if out != "41 42 43 44\n" {
		t.Errorf("output %q", out)
	}
}
