// Command gridpath solves, generates and checks tile grids from the
// terminal.
//
//	gridpath solve --scenario corridor.yaml --algorithm astar
//	gridpath maze --rows 21 --cols 41 --variant bounded --solve bfs
//	gridpath verify --scenario corridor.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := newApp(os.Stdout, log).Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Error("gridpath failed")
		os.Exit(1)
	}
}

// app carries what every command shares.
type app struct {
	out io.Writer
	log *logrus.Logger
}

func newApp(out io.Writer, log *logrus.Logger) *cli.Command {
	a := &app{out: out, log: log}
	return &cli.Command{
		Name:   "gridpath",
		Usage:  "8-connected grid pathfinding and maze generation",
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log at debug level"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				a.log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.solveCommand(),
			a.mazeCommand(),
			a.verifyCommand(),
		},
	}
}

func (a *app) solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "search a scenario file and print the result",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scenario", Aliases: []string{"s"}, Required: true, Usage: "YAML scenario `FILE`"},
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Usage: "dijkstra|astar|aggressive-astar|bfs|dfs"},
			&cli.IntFlag{Name: "offset", Usage: "direction offset 0..7"},
			&cli.BoolFlag{Name: "wrap", Usage: "join opposite edges"},
			&cli.BoolFlag{Name: "random", Usage: "shuffle neighbour order per call"},
			&cli.IntFlag{Name: "seed", Usage: "shuffle and maze seed, 0 = clock"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "text|json"},
		},
		Action: a.solve,
	}
}

func (a *app) mazeCommand() *cli.Command {
	return &cli.Command{
		Name:  "maze",
		Usage: "carve a perfect maze and optionally solve it corner to corner",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Value: 21, Usage: "grid rows"},
			&cli.IntFlag{Name: "cols", Value: 21, Usage: "grid columns"},
			&cli.StringFlag{Name: "variant", Value: "standard", Usage: "standard|bounded"},
			&cli.IntFlag{Name: "seed", Usage: "generator seed, 0 = clock"},
			&cli.StringFlag{Name: "solve", Usage: "algorithm to run on the carved maze"},
		},
		Action: a.maze,
	}
}

func (a *app) verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check a scenario snapshot and goal reachability",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scenario", Aliases: []string{"s"}, Required: true, Usage: "YAML scenario `FILE`"},
		},
		Action: a.verify,
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
