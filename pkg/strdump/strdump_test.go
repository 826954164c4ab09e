package strdump_test

import (
	"errors"
	"strings"
	"testing"

	"dbgvis/pkg/strdump"
)

// scriptInterp replays canned outputs and records every command it is handed.
type scriptInterp struct {
	cmds    []string
	outputs []string
	errs    []error
}

func (s *scriptInterp) HandleCommand(cmd string) (string, error) {
	i := len(s.cmds)
	s.cmds = append(s.cmds, cmd)

	var out string
	var err error
	if i < len(s.outputs) {
		out = s.outputs[i]
	}
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return out, err
}

func (s *scriptInterp) Close() error { return nil }

func TestFormat(t *testing.T) {
	it := &scriptInterp{outputs: []string{
		"10\n",
		"0x7ffee0a10: 41 42 43 44 45\n0x7ffee0a15: 46 47 48 49 4a\n",
	}}

	out, err := strdump.New(it).Format("s")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if len(it.cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d: %v", len(it.cmds), it.cmds)
	}
	if it.cmds[0] != "po s.vec.len" {
		t.Errorf("unexpected eval command %q", it.cmds[0])
	}
	if it.cmds[1] != "me read -s1 -fa -c10 s.vec.buf.ptr.pointer --force" {
		t.Errorf("unexpected read command %q", it.cmds[1])
	}

	want := "41 42 43 44 45\n46 47 48 49 4a\n"
	if out != want {
		t.Errorf("cleaned output %q, want %q", out, want)
	}
}

func TestFormatOverThreshold(t *testing.T) {
	it := &scriptInterp{outputs: []string{"20000"}}

	_, err := strdump.New(it).Format("s")
	if err == nil {
		t.Fatal("expected an error for an over-threshold length")
	}

	var limitErr *strdump.LimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected LimitError, got %T", err)
	}
	if got, want := err.Error(), "Unable to read 20000 bytes (threshold = 16384)"; got != want {
		t.Errorf("error text %q, want %q", got, want)
	}
	if len(it.cmds) != 1 {
		t.Errorf("read should not be issued, commands: %v", it.cmds)
	}
}

func TestFormatEvalFailure(t *testing.T) {
	hostErr := errors.New("error: use of undeclared identifier 's'")
	it := &scriptInterp{errs: []error{hostErr}}

	_, err := strdump.New(it).Format("s")

	var evalErr *strdump.EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvalError, got %v", err)
	}
	if !strings.Contains(err.Error(), hostErr.Error()) {
		t.Errorf("error %q does not carry the host diagnostic", err)
	}
	if len(it.cmds) != 1 {
		t.Errorf("read should not be issued, commands: %v", it.cmds)
	}
}

func TestFormatBadLength(t *testing.T) {
	it := &scriptInterp{outputs: []string{"(usize) $0 = ?\n"}}

	_, err := strdump.New(it).Format("s")

	var parseErr *strdump.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(it.cmds) != 1 {
		t.Errorf("read should not be issued, commands: %v", it.cmds)
	}
}

func TestFormatReadFailure(t *testing.T) {
	hostErr := errors.New("error: memory read failed for 0x0")
	it := &scriptInterp{
		outputs: []string{"10", ""},
		errs:    []error{nil, hostErr},
	}

	_, err := strdump.New(it).Format("s")

	var readErr *strdump.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if !strings.Contains(err.Error(), hostErr.Error()) {
		t.Errorf("error %q does not carry the host diagnostic", err)
	}
}

func TestStripAddrPrefixes(t *testing.T) {
	raw := "0xdeadbeef: 41 42\n0xdeadbeef1: 43"
	want := "41 42\n43"

	got := strdump.StripAddrPrefixes(raw)
	if got != want {
		t.Errorf("stripped %q, want %q", got, want)
	}

	// Stripping is idempotent on cleaned text.
	if again := strdump.StripAddrPrefixes(got); again != want {
		t.Errorf("second strip changed output: %q", again)
	}
}
