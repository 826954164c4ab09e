package cmd

import (
	"dbgvis/pkg/interp"
	"dbgvis/pkg/strdump"
	"dbgvis/pkg/terminal"
	"dbgvis/service"
	"dbgvis/service/grpc"
	"dbgvis/service/http"
	"dbgvis/utils"
	"github.com/urfave/cli"
	"log"
	"net"
)

type ExecType int

const (
	Str ExecType = iota
	Attach
	Conn
)

const (
	defaultAddr = "127.0.0.1:0"
)

type executor struct {
	et  ExecType
	pid int
	ctx *cli.Context
	it  interp.Interpreter
}

func newExecutor(et ExecType, pid int, ctx *cli.Context) (*executor, error) {
	e := &executor{
		et:  et,
		pid: pid,
		ctx: ctx,
	}

	if pid != 0 {
		it, err := interp.AttachLLDB(pid)
		if err != nil {
			return nil, err
		}
		e.it = it
	}

	return e, nil
}

func (e *executor) run() error {
	switch e.et {
	case Str:
		return e.str()
	case Attach:
		return e.attach()
	case Conn:
		args := e.ctx.Args()
		return e.connect(args.First())
	}

	return nil
}

func exec(et ExecType, pid int, ctx *cli.Context) error {
	ex, err := newExecutor(et, pid, ctx)
	if err != nil {
		return err
	}
	return ex.run()
}

func (e *executor) str() error {
	defer e.it.Close()

	args := e.ctx.Args()
	s := sArgs(args)

	out, err := strdump.New(e.it).Format(s.expr)
	if err != nil {
		return err
	}

	utils.PrintDump(out)
	return nil
}

func (e *executor) attach() error {
	var server service.Server
	ctx := e.ctx

	defer e.it.Close()

	listener, err := net.Listen("tcp", defaultAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	srv := ctx.String("srv")
	switch srv {
	case "grpc":
		server = grpc.NewServer(ctx, listener, e.it)
	case "http":
		fallthrough
	default:
		server = http.NewServer(ctx, listener, e.it)
	}

	defer server.Stop()
	if err := server.Run(); err != nil {
		return err
	}

	return e.connect(listener.Addr().String())
}

func (e *executor) connect(addr string) (err error) {
	var client service.Client
	srv := e.ctx.String("srv")
	switch srv {
	case "http":
		fallthrough
	default:
		client, err = http.NewClient(addr)
		if err != nil {
			return
		}
	}

	term := terminal.New(client)
	return term.Run()
}
