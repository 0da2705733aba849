package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/maze"
	"github.com/katalvlaran/tilepath/pathfinding"
	"github.com/katalvlaran/tilepath/precalc"
	"github.com/katalvlaran/tilepath/scenario"
	"github.com/katalvlaran/tilepath/tile"
)

var (
	errNoGoal      = errors.New("gridpath: scenario has no End tile")
	errUnreachable = errors.New("gridpath: goal unreachable from start")
)

func (a *app) solve(_ context.Context, cmd *cli.Command) error {
	sc, err := scenario.LoadFile(cmd.String("scenario"))
	if err != nil {
		return err
	}
	if err := applyOverrides(&sc, cmd); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"scenario":  sc.Name,
		"algorithm": sc.Algorithm.String(),
		"offset":    sc.DirectionOffset,
		"wrap":      sc.WorldWrap,
		"random":    sc.RandomDirection,
	}).Debug("solve: loaded")

	req, err := sc.Build(tile.NewSequence(0))
	if err != nil {
		return err
	}
	cache := precalc.New(precalc.WithLogger(a.log))
	res, err := cache.Resolve(req, sc.Rand())
	if err != nil {
		return err
	}

	switch cmd.String("format") {
	case "json":
		return writeJSON(a.out, sc.Name, req, res)
	case "text":
		a.printf("%s", render(req, res))
		a.printf("%s\n", summary(sc.Algorithm, res))
		return nil
	default:
		return fmt.Errorf("gridpath: unknown format %q", cmd.String("format"))
	}
}

func applyOverrides(sc *scenario.Scenario, cmd *cli.Command) error {
	if cmd.IsSet("algorithm") {
		alg, err := pathfinding.ParseAlgorithm(cmd.String("algorithm"))
		if err != nil {
			return err
		}
		sc.Algorithm = alg
	}
	if cmd.IsSet("offset") {
		sc.DirectionOffset = int(cmd.Int("offset"))
	}
	if cmd.IsSet("wrap") {
		sc.WorldWrap = cmd.Bool("wrap")
	}
	if cmd.IsSet("random") {
		sc.RandomDirection = cmd.Bool("random")
	}
	if cmd.IsSet("seed") {
		sc.Seed = int64(cmd.Int("seed"))
	}

	return sc.Validate()
}

func (a *app) maze(_ context.Context, cmd *cli.Command) error {
	sc := scenario.Default()
	sc.Name = "maze"
	sc.Maze = cmd.String("variant")
	sc.Rows = int(cmd.Int("rows"))
	sc.Cols = int(cmd.Int("cols"))
	sc.Seed = int64(cmd.Int("seed"))
	sc.WorldWrap = false
	if cmd.IsSet("solve") {
		alg, err := pathfinding.ParseAlgorithm(cmd.String("solve"))
		if err != nil {
			return err
		}
		sc.Algorithm = alg
	}

	req, err := sc.Build(tile.NewSequence(0))
	if err != nil {
		return err
	}
	if err := maze.Verify(req.Rows, req.Cols, maze.OpenSet(req.Tiles)); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"rows":    req.Rows,
		"cols":    req.Cols,
		"variant": sc.Maze,
	}).Debug("maze: carved and verified")

	if !cmd.IsSet("solve") {
		a.printf("%s", render(req, gridgraph.Result{}))
		return nil
	}
	res, err := pathfinding.Run(req, sc.Rand())
	if err != nil {
		return err
	}
	a.printf("%s", render(req, res))
	a.printf("%s\n", summary(sc.Algorithm, res))

	return nil
}

func (a *app) verify(_ context.Context, cmd *cli.Command) error {
	sc, err := scenario.LoadFile(cmd.String("scenario"))
	if err != nil {
		return err
	}
	req, err := sc.Build(tile.NewSequence(0))
	if err != nil {
		return err
	}
	if err := tile.Validate(req.Tiles, req.Rows, req.Cols); err != nil {
		return err
	}
	g, err := gridgraph.NewGridGraph(req.Tiles, req.Rows, req.Cols, req.CurrentID)
	if err != nil {
		return err
	}
	if !g.HasGoal {
		return errNoGoal
	}
	policy := sc.Policy(nil)
	regions := len(g.ConnectedComponents(policy))
	a.log.WithField("regions", regions).Debug("verify: flooded")
	if !g.Reachable(policy) {
		return fmt.Errorf("%w (%s regions)", errUnreachable, humanize.Comma(int64(regions)))
	}
	a.printf("ok: %s tiles, %s regions, goal reachable\n",
		humanize.Comma(int64(len(req.Tiles))), humanize.Comma(int64(regions)))

	return nil
}
