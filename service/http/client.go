package http

import (
	"bytes"
	"dbgvis/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const clientTimeout = time.Second * 30

type Client struct {
	addr    string
	url     string
	timeout time.Duration
}

func NewClient(addr string) (*Client, error) {
	c := &Client{
		addr:    addr,
		url:     fmt.Sprintf("http://%s", addr),
		timeout: clientTimeout,
	}

	if !c.IsVisServer() {
		return nil, fmt.Errorf("%s is not a dbgvis server", c.addr)
	}
	return c, nil
}

func (c *Client) SendExpr(cmdType service.CmdType, args string) (string, error) {
	var method, path, expr string
	switch cmdType {
	case service.Cmd:
		expr = cmdExpr(args)
		method = http.MethodPost
		path = "/cmd"
	case service.Str:
		fallthrough
	default:
		expr = strExpr(args)
		method = http.MethodGet
		path = "/str"
	}

	resp, err := c.do(&doRequest{
		method: method,
		path:   path,
		expr:   expr,
	})
	if err != nil {
		return "", err
	}

	if resp.Status != http.StatusOK {
		return "", errors.New(resp.Msg)
	}

	respStr, ok := resp.Data.(string)
	if !ok {
		return "", fmt.Errorf("unexpected response type %T", resp.Data)
	}

	return respStr, nil
}

func (c *Client) IsVisServer() bool {
	if c.addr == "" {
		return false
	}

	resp, err := c.do(&doRequest{
		method: http.MethodGet,
		path:   "/dbgvis",
	})
	if err != nil {
		fmt.Println("client recv err: ", err)
		return false
	}

	return resp.Status == http.StatusOK
}

func strExpr(args string) string {
	return fmt.Sprintf("str %s", args)
}

func cmdExpr(args string) string {
	return fmt.Sprintf("cmd %s", args)
}

type doRequest struct {
	method string
	path   string
	header http.Header
	expr   string
}

func (c *Client) jsonHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return header
}

func (c *Client) do(req *doRequest) (resp *response, err error) {
	url := c.url + req.path

	exr := newExpression(req.expr, os.Getpid())
	bs, err := json.Marshal(exr)
	if err != nil {
		return
	}

	bodyReader := bytes.NewReader(bs)
	r, err := http.NewRequest(req.method, url, bodyReader)
	if err != nil {
		return
	}

	if req.header == nil {
		r.Header = c.jsonHeader()
	} else {
		r.Header = req.header
	}

	http.DefaultClient.Timeout = c.timeout
	res, err := http.DefaultClient.Do(r)
	if err != nil {
		return
	}

	bs, err = io.ReadAll(res.Body)
	if err != nil {
		return
	}

	err = json.Unmarshal(bs, &resp)
	return
}
