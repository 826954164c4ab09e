package terminal

import (
	"dbgvis/service"
	"errors"
	"fmt"
	"github.com/google/shlex"
	"os"
	"strings"
	"text/tabwriter"
)

var (
	argumentsErr = "invalid number of arguments, expected %d, actual %d"
)

type cmdFn func(term *Term, args string) error

type command struct {
	aliases []string
	fn      cmdFn
	help    string
}

func (c command) match(cmdstr string) bool {
	for _, v := range c.aliases {
		if v == cmdstr {
			return true
		}
	}
	return false
}

type Commands struct {
	cmds   []command
	client service.Client
}

func NewCommands(client service.Client) *Commands {
	c := &Commands{
		client: client,
	}

	c.cmds = []command{
		{
			aliases: []string{"help", "h"},
			fn:      c.help,
			help: `Prints the help message.

	help [command]

Type "help" followed by the name of a command for more information about it.`},
		{
			aliases: []string{"str", "ps"},
			fn:      str,
			help:    "pretty-print the contents of a string-like buffer reachable in the current frame of the host session.",
		},
		{
			aliases: []string{"po", "p"},
			fn:      po,
			help:    "pass a raw command to the host debugger's interpreter and print its output.",
		},
		{
			aliases: []string{"transcript", "t"},
			fn:      transcript,
			help:    "append the session's commands and output to a file. transcript -off stops recording.",
		},
		{
			aliases: []string{"exit", "quit", "q"},
			fn:      exit,
			help:    "exit dbgvis",
		},
	}
	return c
}

// Find will look up the command function for the given command input.
// If it cannot find the command it will default to noCmdAvailable().
// If the command is an empty string it will replay the last command.
func (c *Commands) Find(cmdstr string) command {
	// If <enter> use last command, if there was one.
	if cmdstr == "" {
		return command{aliases: []string{"nullcmd"}, fn: nullCommand}
	}

	for _, v := range c.cmds {
		if v.match(cmdstr) {
			return v
		}
	}

	return command{aliases: []string{"nocmd"}, fn: noCmdAvailable}
}

func (c *Commands) Call(cmdStr string, t *Term) error {
	cmd, argStr, _ := strings.Cut(cmdStr, " ")

	return c.Find(cmd).fn(t, argStr)
}

func (c *Commands) help(t *Term, args string) error {
	fmt.Fprintln(t.stdout, "The following commands are available:")
	w := new(tabwriter.Writer)
	w.Init(t.stdout, 0, 8, 0, '-', 0)
	for _, cmd := range c.cmds {
		h := cmd.help
		if idx := strings.Index(h, "\n"); idx >= 0 {
			h = h[:idx]
		}
		if len(cmd.aliases) > 1 {
			fmt.Fprintf(w, "    %s (alias: %s) \t %s\n", cmd.aliases[0], strings.Join(cmd.aliases[1:], " | "), h)
		} else {
			fmt.Fprintf(w, "    %s \t %s\n", cmd.aliases[0], h)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(t.stdout)
	return nil
}

func str(t *Term, args string) error {
	fields, err := shlex.Split(args)
	if err != nil {
		return err
	}
	if len(fields) != 1 {
		return fmt.Errorf(argumentsErr, 1, len(fields))
	}

	v, err := t.client.SendExpr(service.Str, fields[0])
	if err != nil {
		t.RedirectTo(os.Stderr)
		fmt.Fprintln(t.stdout, err.Error())
		return err
	}

	_, err = fmt.Fprintln(t.stdout, v)
	return err
}

func po(t *Term, args string) error {
	if strings.TrimSpace(args) == "" {
		return fmt.Errorf(argumentsErr, 1, 0)
	}

	v, err := t.client.SendExpr(service.Cmd, args)
	if err != nil {
		t.RedirectTo(os.Stderr)
		fmt.Fprintln(t.stdout, err.Error())
		return err
	}

	_, err = fmt.Fprintln(t.stdout, v)
	return err
}

func transcript(t *Term, args string) error {
	fields, err := shlex.Split(args)
	if err != nil {
		return err
	}
	if len(fields) != 1 {
		return fmt.Errorf(argumentsErr, 1, len(fields))
	}

	if fields[0] == "-off" {
		return t.stdout.CloseTranscript()
	}

	return t.stdout.OpenTranscript(fields[0])
}

type ExitRequestError struct{}

func (ere ExitRequestError) Error() string {
	return ""
}

func exit(t *Term, args string) error {
	return ExitRequestError{}
}

var errNoCmd = errors.New("command not available")

func noCmdAvailable(t *Term, args string) error {
	return errNoCmd
}

func nullCommand(t *Term, args string) error {
	return nil
}
