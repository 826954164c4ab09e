package interp

// Interpreter is a handle on a host debugger's command interpreter.
// Commands are plain text, results are whatever text the host printed
// while handling the command.
type Interpreter interface {
	HandleCommand(cmd string) (string, error)
	Close() error
}
