package interp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	e "dbgvis/error"
	"golang.org/x/sys/unix"
)

const (
	prompt         = "(lldb) "
	defaultTimeout = 10 * time.Second
)

// LLDB drives an lldb process over its standard pipes. One textual command is
// in flight at a time: write the command, then read everything the host
// prints up to the next prompt.
type LLDB struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	out     *os.File
	mu      sync.Mutex
	timeout time.Duration
	closed  bool
}

// AttachLLDB spawns lldb attached to pid and waits for the interpreter
// to print its first prompt.
func AttachLLDB(pid int) (*LLDB, error) {
	cmd := exec.Command("lldb", "--no-use-colors", "-p", strconv.Itoa(pid))
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	l := &LLDB{
		cmd:     cmd,
		stdin:   stdin,
		out:     pr,
		timeout: defaultTimeout,
	}

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return nil, fmt.Errorf("failed to start lldb: %v", err)
	}
	pw.Close()

	if _, err := l.readToPrompt(); err != nil {
		l.Close()
		return nil, err
	}

	return l, nil
}

func (l *LLDB) HandleCommand(command string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return "", e.InterpreterClosed
	}

	if _, err := fmt.Fprintln(l.stdin, command); err != nil {
		return "", err
	}

	out, err := l.readToPrompt()
	if err != nil {
		return "", err
	}

	// lldb reports command failures inline rather than on a separate channel.
	if strings.HasPrefix(strings.TrimSpace(out), "error: ") {
		return "", errors.New(strings.TrimSpace(out))
	}

	return out, nil
}

func (l *LLDB) readToPrompt() (string, error) {
	l.out.SetReadDeadline(time.Now().Add(l.timeout))
	defer l.out.SetReadDeadline(time.Time{})

	var buf []byte
	chunk := make([]byte, 4096)
	for {
		n, err := l.out.Read(chunk)
		buf = append(buf, chunk[:n]...)

		if bytes.HasSuffix(buf, []byte(prompt)) {
			return strings.TrimSuffix(string(buf), prompt), nil
		}

		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				l.interrupt()
				return "", e.CommandTimeout
			}
			return "", err
		}
	}
}

// interrupt delivers SIGINT to the lldb process group so a stuck command
// returns control to the interpreter.
func (l *LLDB) interrupt() {
	if l.cmd == nil || l.cmd.Process == nil {
		return
	}
	unix.Kill(-l.cmd.Process.Pid, unix.SIGINT)
}

func (l *LLDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	fmt.Fprintln(l.stdin, "quit")
	l.stdin.Close()
	l.out.Close()

	if l.cmd == nil {
		return nil
	}
	return l.cmd.Wait()
}
