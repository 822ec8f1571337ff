package rpc

import (
	"context"
	"io"

	"go.lsp.dev/jsonrpc2"
)

// Client calls the vnodes methods on a server.
type Client struct {
	conn jsonrpc2.Conn
}

// NewClient speaks JSON-RPC over rwc until Close.
func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn}
}

func (c *Client) Get(ctx context.Context, path string) (Value, error) {
	var res Value
	err := c.call(ctx, MethodGet, PathParams{Path: path}, &res)
	return res, err
}

func (c *Client) Insert(ctx context.Context, path string, v Value) error {
	return c.call(ctx, MethodInsert, InsertParams{Path: path, Value: v}, nil)
}

func (c *Client) List(ctx context.Context, path string) ([]string, error) {
	var res ListResult
	err := c.call(ctx, MethodList, PathParams{Path: path}, &res)
	return res.Keys, err
}

func (c *Client) Chdir(ctx context.Context, path string) error {
	return c.call(ctx, MethodChdir, PathParams{Path: path}, nil)
}

func (c *Client) Close() error {
	err := c.conn.Close()
	<-c.conn.Done()
	return err
}

func (c *Client) call(ctx context.Context, method string, params, result any) error {
	_, err := c.conn.Call(ctx, method, params, result)
	return FromRPCError(err)
}
