package logflags

import (
	"fmt"
	"io"
	"os"
)

const DefaultLogDesc = "/tmp/dbgvis.log"

// Logger is the subset of zap's sugared logger the services log through.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

var (
	http bool

	logOut io.Writer = os.Stderr
)

// Setup parses the logging configuration of the command line. When flag is
// false debug logging stays off and output goes to stderr.
func Setup(flag bool, logStr, logDest string) error {
	http = false
	if !flag {
		logOut = os.Stderr
		return nil
	}

	switch logStr {
	case "http":
		http = true
	default:
		return fmt.Errorf("invalid log type: %s", logStr)
	}

	if logDest == "" {
		logOut = os.Stderr
		return nil
	}

	f, err := os.OpenFile(logDest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	logOut = f

	return nil
}
