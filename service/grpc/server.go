package grpc

import (
	"dbgvis/pkg/interp"
	"dbgvis/service"
	"github.com/urfave/cli"
	"google.golang.org/grpc"
	"net"
	"os"
)

// Server is an alternative session transport. No service is registered on it
// yet, the terminal still speaks http.
type Server struct {
	service.ServerImpl
	grpcServer *grpc.Server
}

func NewServer(ctx *cli.Context, listener net.Listener, it interp.Interpreter) *Server {
	impl := service.ServerImpl{
		Listener: listener,
		Interp:   it,
		StopChan: make(chan struct{}),
	}
	if ctx != nil {
		impl.SetupLogger(ctx.Bool("logFlag"), ctx.String("logStr"), ctx.String("logDesc"))
	}

	return &Server{
		ServerImpl: impl,
		grpcServer: grpc.NewServer(),
	}
}

func (s *Server) Run() error {
	go func() {
		if err := s.grpcServer.Serve(s.Listener); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	s.grpcServer.Stop()
	return nil
}
