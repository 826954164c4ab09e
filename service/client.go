package service

type CmdType int

const (
	Str CmdType = iota
	Cmd
)

type Client interface {
	SendExpr(cmdType CmdType, args string) (string, error)
	IsVisServer() bool
}
