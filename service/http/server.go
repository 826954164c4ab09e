package http

import (
	"context"
	"dbgvis/pkg/interp"
	"dbgvis/service"
	"github.com/urfave/cli"
	"net"
	"net/http"
	"os"
	"sync"
)

type Server struct {
	service.ServerImpl
	httpServer *http.Server
	pool       sync.Pool
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

	s := &Server{
		ServerImpl: impl,
		pool: sync.Pool{
			New: func() interface{} {
				proc, _ := newProcessor(it)
				return proc
			},
		},
	}

	s.httpServer = &http.Server{
		Handler: s,
	}

	return s
}

func (s *Server) Run() error {
	go func() {
		if err := s.httpServer.Serve(s.Listener); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	return s.httpServer.Shutdown(context.Background())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := newContext(s.Logger, w, r)
	p := s.pool.Get().(*processor)
	ctx.chain = httpHandlerChain(p.worker)
	ctx.chain.exec(ctx)
	s.pool.Put(p)
}
