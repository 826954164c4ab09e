package service

import (
	"dbgvis/pkg/interp"
	"dbgvis/pkg/logflags"
	"net"
)

// Server represents a session server for a remote client
// to connect to.
type Server interface {
	Run() error
	Stop() error
}

type ServerImpl struct {
	Logger   logflags.Logger
	Listener net.Listener
	Interp   interp.Interpreter
	StopChan chan struct{}
}

func (si *ServerImpl) SetupLogger(flag bool, logStr, logDest string) error {
	err := logflags.Setup(flag, logStr, logDest)
	if err != nil {
		return err
	}

	switch logStr {
	case "http":
		fallthrough
	default:
		si.Logger = logflags.HTTPLogger()
	}

	return nil
}
