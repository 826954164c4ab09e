package terminal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dbgvis/service"
)

type fakeClient struct {
	lastType service.CmdType
	lastArgs string
	out      string
	err      error
}

func (f *fakeClient) SendExpr(cmdType service.CmdType, args string) (string, error) {
	f.lastType = cmdType
	f.lastArgs = args
	return f.out, f.err
}

func (f *fakeClient) IsVisServer() bool { return true }

func newTestTerm(fc *fakeClient) (*Term, *bytes.Buffer) {
	var buf bytes.Buffer
	pw := &pagingWriter{w: &buf, orig: &buf}
	t := &Term{
		client: fc,
		prompt: prompt,
		stdout: &transcriptWriter{pw: pw},
		cmds:   NewCommands(fc),
	}
	return t, &buf
}

func TestFind(t *testing.T) {
	c := NewCommands(&fakeClient{})

	if !c.Find("str").match("str") {
		t.Error("str command not found")
	}
	if !c.Find("ps").match("str") {
		t.Error("str alias not found")
	}

	term, _ := newTestTerm(&fakeClient{})
	if err := c.Find("bogus").fn(term, ""); !errors.Is(err, errNoCmd) {
		t.Errorf("unknown command returned %v", err)
	}
	if err := c.Find("").fn(term, ""); err != nil {
		t.Errorf("empty command returned %v", err)
	}
}

func TestCallStr(t *testing.T) {
	fc := &fakeClient{out: "68 69 21 00\n"}
	term, buf := newTestTerm(fc)

	if err := term.cmds.Call("str s", term); err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	if fc.lastType != service.Str {
		t.Errorf("command type %v", fc.lastType)
	}
	if fc.lastArgs != "s" {
		t.Errorf("args %q", fc.lastArgs)
	}
	if !strings.Contains(buf.String(), "68 69 21 00") {
		t.Errorf("terminal output %q", buf.String())
	}
}

func TestCallStrQuoted(t *testing.T) {
	fc := &fakeClient{}
	term, _ := newTestTerm(fc)

	if err := term.cmds.Call(`str "nodes[0].payload"`, term); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if fc.lastArgs != "nodes[0].payload" {
		t.Errorf("args %q", fc.lastArgs)
	}
}

func TestCallStrArgCount(t *testing.T) {
	term, _ := newTestTerm(&fakeClient{})

	if err := term.cmds.Call("str a b", term); err == nil {
		t.Error("expected an error for two arguments")
	}
}

func TestCallPo(t *testing.T) {
	fc := &fakeClient{out: "(unsigned long) $0 = 5\n"}
	term, buf := newTestTerm(fc)

	if err := term.cmds.Call("po po s.vec.len", term); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if fc.lastType != service.Cmd {
		t.Errorf("command type %v", fc.lastType)
	}
	if fc.lastArgs != "po s.vec.len" {
		t.Errorf("args %q", fc.lastArgs)
	}
	if !strings.Contains(buf.String(), "$0 = 5") {
		t.Errorf("terminal output %q", buf.String())
	}
}

func TestCallExit(t *testing.T) {
	term, _ := newTestTerm(&fakeClient{})

	err := term.cmds.Call("exit", term)
	if _, ok := err.(ExitRequestError); !ok {
		t.Errorf("exit returned %v", err)
	}
}

func TestTranscript(t *testing.T) {
	fc := &fakeClient{out: "41 42\n43\n"}
	term, _ := newTestTerm(fc)

	file := filepath.Join(t.TempDir(), "transcript.txt")
	if err := term.cmds.Call("transcript "+file, term); err != nil {
		t.Fatalf("transcript failed: %v", err)
	}

	if err := term.cmds.Call("str s", term); err != nil {
		t.Fatalf("str failed: %v", err)
	}
	term.stdout.Flush()

	if err := term.cmds.Call("transcript -off", term); err != nil {
		t.Fatalf("transcript -off failed: %v", err)
	}

	bs, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bs), "41 42\n43") {
		t.Errorf("transcript contents %q", bs)
	}
}
