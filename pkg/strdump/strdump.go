// Package strdump pretty-prints string-like heap buffers of a debugged
// process. It never touches target memory itself: the host debugger evaluates
// the length field and dumps the bytes, strdump post-processes the text.
package strdump

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dbgvis/pkg/interp"
)

const (
	// MemThreshold is the largest buffer a single dump may read.
	MemThreshold = 16384

	// Field paths into the buffer layout where the length and the pointer
	// to heap storage live.
	lenPath = "vec.len"
	ptrPath = "vec.buf.ptr.pointer"
)

// addrPrefix matches the "0xADDR: " annotation the host prepends to every
// line of a memory dump.
var addrPrefix = regexp.MustCompile(`(^|\n)0x[0-9A-Fa-f]+: `)

type Formatter struct {
	it        interp.Interpreter
	Threshold int
	LenPath   string
	PtrPath   string
}

func New(it interp.Interpreter) *Formatter {
	return &Formatter{
		it:        it,
		Threshold: MemThreshold,
		LenPath:   lenPath,
		PtrPath:   ptrPath,
	}
}

// Format reads the buffer behind target and returns its bytes the way the
// host renders them, one line per chunk, with the address prefixes removed.
// The length is checked against the threshold before any bulk read is issued.
func (f *Formatter) Format(target string) (string, error) {
	out, err := f.it.HandleCommand(fmt.Sprintf("po %s.%s", target, f.LenPath))
	if err != nil {
		return "", &EvalError{Target: target, Err: err}
	}

	readLen, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return "", &ParseError{Target: target, Output: out}
	}

	if readLen > f.Threshold {
		return "", &LimitError{Requested: readLen, Threshold: f.Threshold}
	}

	out, err = f.it.HandleCommand(fmt.Sprintf("me read -s1 -fa -c%d %s.%s --force", readLen, target, f.PtrPath))
	if err != nil {
		return "", &ReadError{Target: target, Err: err}
	}

	return StripAddrPrefixes(out), nil
}

// StripAddrPrefixes removes the leading address annotation from every line of
// a memory dump, preserving line breaks. Already-cleaned text passes through
// unchanged.
func StripAddrPrefixes(s string) string {
	return addrPrefix.ReplaceAllString(s, "${1}")
}
