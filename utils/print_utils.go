package utils

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	terminalGreenEscapeCode = "\033[32m"
	terminalResetEscapeCode = "\033[0m"
)

// PrintDump writes an already-formatted byte dump to stdout, colored when
// stdout is a terminal.
func PrintDump(s string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(s)
		return
	}

	w := colorable.NewColorableStdout()
	fmt.Fprintf(w, "%s%s%s\n", terminalGreenEscapeCode, s, terminalResetEscapeCode)
}
