package cmd

import "github.com/urfave/cli"

const (
	usage = `dbgvis is a debugger companion that pretty-prints string-like heap buffers of a
             target process by issuing textual commands to a host debugger session`
)

func NewVis() *cli.App {
	app := cli.NewApp()
	app.Name = "dbgvis"
	app.Usage = usage
	app.Commands = []cli.Command{
		str,
		attach,
		conn,
	}

	return app
}
