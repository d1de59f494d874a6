package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/peertopo/server"
)

var (
	addrFlag = cli.StringFlag{
		Name:  "addr",
		Usage: "HTTP listen address",
		Value: server.DefaultConfig().Addr,
	}
	maxNodesFlag = cli.IntFlag{
		Name:  "max-nodes",
		Usage: "Largest node count a single request may ask for",
		Value: server.DefaultConfig().MaxNodes,
	}
	serveWorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Small-world row workers per request",
		Value: server.DefaultConfig().Workers,
	}
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "Per-request time limit",
		Value: server.DefaultConfig().RequestTimeout,
	}
)

var serveCommand = cli.Command{
	Name:      "serve",
	Usage:     "Serve topologies and metrics over HTTP",
	ArgsUsage: " ",
	Flags:     []cli.Flag{addrFlag, maxNodesFlag, serveWorkersFlag, timeoutFlag},
	Action: func(ctx *cli.Context) error {
		srv, err := server.New(server.Config{
			Addr:           ctx.String(addrFlag.Name),
			MaxNodes:       ctx.Int(maxNodesFlag.Name),
			Workers:        ctx.Int(serveWorkersFlag.Name),
			RequestTimeout: ctx.Duration(timeoutFlag.Name),
		})
		if err != nil {
			return err
		}
		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(runCtx)
	},
}
