// Package rpc exposes a context over JSON-RPC 2.0.
//
// Methods:
//
//	vnodes/get    {path}         -> Value
//	vnodes/insert {path, value}  -> null
//	vnodes/list   {path}         -> {keys}
//	vnodes/chdir  {path}         -> null
//
// An abi error n is reported with JSON-RPC code -32000-n.
package rpc

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/segmentio/encoding/json"
	"github.com/signadot/vnodes"
	"github.com/signadot/vnodes/debug"
	"github.com/signadot/vnodes/value"
	"go.lsp.dev/jsonrpc2"
)

const (
	MethodGet    = "vnodes/get"
	MethodInsert = "vnodes/insert"
	MethodList   = "vnodes/list"
	MethodChdir  = "vnodes/chdir"
)

type Server struct {
	ctx *vnodes.Context
}

func NewServer(c *vnodes.Context) *Server {
	return &Server{ctx: c}
}

// ServeConn serves rwc until the peer hangs up or ctx is done.
func (s *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handler())
	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	}
	err := conn.Err()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// Serve accepts connections on l until ctx is done, serving each on its own
// goroutine.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		l.Close()
	}()
	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.ServeConn(ctx, conn); err != nil && debug.RPC() {
				debug.Logf("rpc: %s: %v\n", conn.RemoteAddr(), err)
			}
		}()
	}
}

// Handler returns the jsonrpc2 handler for the vnodes methods.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.RPC() {
			debug.Logf("rpc %s\n", req.Method())
		}
		switch req.Method() {
		case MethodGet:
			var p PathParams
			if err := unmarshalParams(req, &p); err != nil {
				return reply(ctx, nil, err)
			}
			res, err := s.get(p.Path)
			return reply(ctx, res, toRPCError(err))
		case MethodInsert:
			var p InsertParams
			if err := unmarshalParams(req, &p); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, nil, toRPCError(s.insert(p)))
		case MethodList:
			var p PathParams
			if err := unmarshalParams(req, &p); err != nil {
				return reply(ctx, nil, err)
			}
			keys, err := s.ctx.List(p.Path)
			if err != nil {
				return reply(ctx, nil, toRPCError(err))
			}
			res := ListResult{Keys: make([]string, len(keys))}
			for i, k := range keys {
				res.Keys[i] = k.String()
			}
			return reply(ctx, res, nil)
		case MethodChdir:
			var p PathParams
			if err := unmarshalParams(req, &p); err != nil {
				return reply(ctx, nil, err)
			}
			return reply(ctx, nil, toRPCError(s.ctx.Chdir(p.Path)))
		}
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (s *Server) get(path string) (*Value, error) {
	v, err := vnodes.Get[value.Value](s.ctx, path)
	if err != nil {
		return nil, err
	}
	defer value.Release(v)
	w, err := Encode(s.ctx, v)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Server) insert(p InsertParams) error {
	v, err := Decode(p.Value)
	if err != nil {
		return err
	}
	return vnodes.Insert(s.ctx, p.Path, v)
}

func unmarshalParams(req jsonrpc2.Request, dst any) error {
	if err := json.Unmarshal(req.Params(), dst); err != nil {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}
	if debug.RPC() {
		debug.LogAny(dst)
	}
	return nil
}
