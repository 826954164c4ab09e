package terminal

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// pagingWriter is the terminal's stdout. Commands may redirect it (for
// example to stderr on failure); Reset restores the original destination
// after every command.
type pagingWriter struct {
	w    io.Writer
	orig io.Writer
}

func newPagingWriter() *pagingWriter {
	var w io.Writer = os.Stdout
	if isatty.IsTerminal(os.Stdout.Fd()) {
		w = colorable.NewColorableStdout()
	}
	return &pagingWriter{w: w, orig: w}
}

func (pw *pagingWriter) Write(p []byte) (int, error) {
	return pw.w.Write(p)
}

func (pw *pagingWriter) Reset() {
	pw.w = pw.orig
}

// transcriptWriter tees command output into a transcript file when one is
// open. Echo records lines the terminal already displayed on its own, such
// as the prompt line.
type transcriptWriter struct {
	pw         *pagingWriter
	transcript *bufio.Writer
	file       *os.File
}

func (w *transcriptWriter) Write(p []byte) (int, error) {
	if w.transcript != nil {
		w.transcript.Write(p)
	}
	return w.pw.Write(p)
}

func (w *transcriptWriter) Echo(s string) {
	if w.transcript != nil {
		w.transcript.WriteString(s)
	}
}

func (w *transcriptWriter) Flush() {
	if w.transcript != nil {
		w.transcript.Flush()
	}
}

func (w *transcriptWriter) OpenTranscript(path string) error {
	if err := w.CloseTranscript(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	w.file = f
	w.transcript = bufio.NewWriter(f)
	return nil
}

func (w *transcriptWriter) CloseTranscript() error {
	if w.transcript == nil {
		return nil
	}

	w.transcript.Flush()
	w.transcript = nil

	f := w.file
	w.file = nil
	return f.Close()
}
