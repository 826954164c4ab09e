package http

import (
	"dbgvis/pkg/interp"
	"dbgvis/pkg/strdump"
	"dbgvis/utils"
	"fmt"
	"github.com/derekparker/trie"
	"net/http"
	"strings"
)

type Router struct {
	method string
	path   string
	fn     func(ctx *Context)
}

type processor struct {
	it     interp.Interpreter
	fmttr  *strdump.Formatter
	router []*Router
	trie   *trie.Trie
}

func (p *processor) route(method, path string) func(ctx *Context) {
	node, found := p.trie.Find(utils.MD5(methodPath(method, path)))
	if found {
		fn := node.Meta().(func(ctx *Context))
		return fn
	}

	return nil
}

func (p *processor) worker(ctx *Context) {
	req := ctx.request
	fn := p.route(req.method, req.path)
	if fn == nil {
		ctx.respFailed(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	fn(ctx)
}

func newProcessor(it interp.Interpreter) (*processor, error) {
	proc := &processor{
		it:    it,
		fmttr: strdump.New(it),
	}

	register(proc)
	return proc, nil
}

func register(p *processor) {
	r := []*Router{
		{
			method: http.MethodGet,
			path:   "/dbgvis",
			fn: func(ctx *Context) {
				ctx.respSuccess(nil)
			},
		},
		{
			method: http.MethodGet,
			path:   "/str",
			fn: func(ctx *Context) {
				expr := ctx.expr
				cmd, args := expr.resolve()
				cmdStr := strings.ToLower(cmd)
				if cmdStr != "str" {
					ctx.respFailed(http.StatusBadRequest, fmt.Sprintf("invalid command: %s", cmdStr))
					return
				}

				if len(args) < 1 {
					ctx.respFailed(http.StatusBadRequest, fmt.Sprintf("invalid number of arguments: %d", len(args)))
					return
				}

				target := args[0]
				res, err := p.fmttr.Format(target)
				if err != nil {
					ctx.respFailed(http.StatusInternalServerError, err.Error())
					return
				}

				ctx.respSuccess(res)
			},
		},
		{
			method: http.MethodPost,
			path:   "/cmd",
			fn: func(ctx *Context) {
				expr := ctx.expr
				cmd, args := expr.resolve()
				cmdStr := strings.ToLower(cmd)
				if cmdStr != "cmd" {
					ctx.respFailed(http.StatusBadRequest, fmt.Sprintf("invalid command: %s", cmdStr))
					return
				}

				if len(args) < 1 {
					ctx.respFailed(http.StatusBadRequest, fmt.Sprintf("invalid number of arguments: %d", len(args)))
					return
				}

				res, err := p.it.HandleCommand(strings.Join(args, " "))
				if err != nil {
					ctx.respFailed(http.StatusInternalServerError, err.Error())
					return
				}

				ctx.respSuccess(res)
			},
		},
	}

	p.router = r

	t := trie.New()
	for _, router := range p.router {
		md5 := utils.MD5(methodPath(router.method, router.path))
		t.Add(md5, router.fn)
	}

	p.trie = t
}

func methodPath(method, path string) string {
	return fmt.Sprintf("%s:%s", method, path)
}
