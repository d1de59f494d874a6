// topogen builds peer topologies for the block-propagation simulator and
// writes them as Topology.h / Topology.c, or serves them over HTTP.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"
)

var (
	// Git SHA1 commit hash of the release (set via linker flags).
	gitCommit = ""
	version   = "0.1.0"
)

var verbosityFlag = cli.IntFlag{
	Name:  "verbosity",
	Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
	Value: int(log.LvlInfo),
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "topogen"
	app.Usage = "generate peer topologies for the block-propagation simulator"
	app.Version = version
	app.HideVersion = true // we have a command to print the version
	app.Flags = []cli.Flag{verbosityFlag}
	app.Commands = []cli.Command{
		symmetricCommand,
		smallWorldCommand,
		serveCommand,
		versionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Before = func(ctx *cli.Context) error {
		setupLogging(ctx.GlobalInt(verbosityFlag.Name))
		return nil
	}
	return app
}

// setupLogging routes the root logger to stderr, filtered at verbosity.
func setupLogging(verbosity int) {
	h := log.StreamHandler(os.Stderr, log.TerminalFormat(false))
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(verbosity), h))
}

var versionCommand = cli.Command{
	Name:  "version",
	Usage: "Print version numbers",
	Action: func(ctx *cli.Context) error {
		fmt.Println("topogen", version)
		if gitCommit != "" {
			fmt.Println("Git Commit:", gitCommit)
		}
		return nil
	},
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
