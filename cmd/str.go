package cmd

import (
	"dbgvis/utils"
	"fmt"
	"github.com/urfave/cli"
	"strconv"
)

var str = cli.Command{
	Name:  "str",
	Usage: "print the contents of a string-like buffer of the target process",
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 2, utils.ExactArgs, strArgsCheck); err != nil {
			return err
		}

		pid, err := strconv.Atoi(context.Args().First())
		if err != nil {
			return err
		}

		return exec(Str, pid, context)
	},
}

type strArgs struct {
	expr string
}

func sArgs(args cli.Args) *strArgs {
	return &strArgs{
		expr: args.Get(1),
	}
}

func strArgsCheck(args cli.Args) error {
	pid := args.First()
	if !utils.CheckPid(pid) {
		return fmt.Errorf("pid %s does not exist", pid)
	}

	return nil
}
