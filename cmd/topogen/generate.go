package main

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/serial"
)

var (
	nodesFlag = cli.IntFlag{
		Name:  "nodes",
		Usage: "Number of nodes in the network",
	}
	minPeersFlag = cli.IntFlag{
		Name:  "min-peers",
		Usage: "Minimum number of peers per node",
	}
	maxPeersFlag = cli.IntFlag{
		Name:  "max-peers",
		Usage: "Maximum number of peers per node (peer array width)",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Random seed; the clock is used when unset",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Directory to write Topology.h and Topology.c into",
		Value: ".",
	}
	attemptsFactorFlag = cli.IntFlag{
		Name:  "attempts-factor",
		Usage: "Candidate draws allowed per node before giving up",
		Value: builder.DefaultAttemptFactor,
	}
	densityFlag = cli.Float64Flag{
		Name:  "density",
		Usage: "Share of the ring treated as the local neighbourhood, in [0,1]",
	}
	propagationFlag = cli.Float64Flag{
		Name:  "propagation",
		Usage: "Weight of the long-range shortcut term, in [0,1]",
	}
	maxDistanceFlag = cli.Float64Flag{
		Name:  "max-distance",
		Usage: "Distance scale of the local neighbourhood (> 0)",
	}
	trialFlag = cli.StringFlag{
		Name:  "trial",
		Usage: "Pair trial mode: double (either endpoint accepts) or single",
		Value: builder.TrialDouble.String(),
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Rows generated concurrently",
		Value: builder.DefaultWorkers,
	}
)

var symmetricCommand = cli.Command{
	Name:      "symmetric",
	Usage:     "Generate a bounded-degree random symmetric topology",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		nodesFlag,
		minPeersFlag,
		maxPeersFlag,
		seedFlag,
		attemptsFactorFlag,
		outFlag,
	},
	Action: func(ctx *cli.Context) error {
		p := builder.Params{
			Strategy: builder.StrategyRandomSymmetric,
			Nodes:    ctx.Int(nodesFlag.Name),
			MinPeers: ctx.Int(minPeersFlag.Name),
			MaxPeers: ctx.Int(maxPeersFlag.Name),
		}
		factor := ctx.Int(attemptsFactorFlag.Name)
		if factor < 1 {
			return fmt.Errorf("--%s must be >= 1, got %d", attemptsFactorFlag.Name, factor)
		}
		return generate(ctx, p, builder.WithMaxAttemptsFactor(factor))
	},
}

var smallWorldCommand = cli.Command{
	Name:      "smallworld",
	Usage:     "Generate a ring-distance small-world topology",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		nodesFlag,
		densityFlag,
		propagationFlag,
		maxDistanceFlag,
		seedFlag,
		trialFlag,
		workersFlag,
		minPeersFlag,
		maxPeersFlag,
		outFlag,
	},
	Action: func(ctx *cli.Context) error {
		trial, err := builder.ParseTrialMode(ctx.String(trialFlag.Name))
		if err != nil {
			return err
		}
		workers := ctx.Int(workersFlag.Name)
		if workers < 1 {
			return fmt.Errorf("--%s must be >= 1, got %d", workersFlag.Name, workers)
		}
		p := builder.Params{
			Strategy:    builder.StrategySmallWorld,
			Nodes:       ctx.Int(nodesFlag.Name),
			MinPeers:    ctx.Int(minPeersFlag.Name),
			MaxPeers:    ctx.Int(maxPeersFlag.Name),
			Density:     ctx.Float64(densityFlag.Name),
			Propagation: ctx.Float64(propagationFlag.Name),
			MaxDistance: ctx.Float64(maxDistanceFlag.Name),
			Trial:       trial,
		}
		return generate(ctx, p, builder.WithWorkers(workers))
	},
}

// generate builds the topology described by p, logs its shape and writes the
// C files into --out.
func generate(ctx *cli.Context, p builder.Params, opts ...builder.Option) error {
	seed := time.Now().UnixNano()
	if ctx.IsSet(seedFlag.Name) {
		seed = ctx.Int64(seedFlag.Name)
	}
	opts = append(opts, builder.WithSeed(seed))

	start := time.Now()
	t, err := builder.Generate(p, opts...)
	if err != nil {
		return err
	}
	minPeers, maxPeers := p.Bounds(t)
	s, err := serial.Serialize(t, p.Nodes, minPeers, maxPeers)
	if err != nil {
		return err
	}

	st := t.Stats()
	log.Info("Topology generated", "strategy", p.Strategy, "nodes", st.Nodes, "edges", st.Edges,
		"seed", seed, "elapsed", time.Since(start))
	log.Debug("Degree distribution", "min", st.MinDegree, "max", st.MaxDegree,
		"mean", st.MeanDegree, "isolated", st.Isolated)
	if st.Components > 1 {
		log.Warn("Topology is not connected", "components", st.Components, "isolated", st.Isolated)
	}

	header, source, err := serial.WriteFiles(ctx.String(outFlag.Name), s)
	if err != nil {
		return err
	}
	log.Info("Wrote topology", "header", header, "source", source,
		"min_peers", s.MinPeers, "max_peers", s.MaxPeers)
	return nil
}
