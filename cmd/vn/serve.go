package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/vnodes/rpc"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
		defer agent.Close()
	}
	c, err := cfg.newContext()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			theLog.Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	srv := rpc.NewServer(c)
	if cfg.Addr == "" {
		return srv.ServeConn(ctx, rpc.Stdio(cc.In, cc.Out))
	}
	l, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}
	theLog.Info("listening", "addr", l.Addr().String())
	return srv.Serve(ctx, l)
}
